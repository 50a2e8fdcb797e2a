package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeunessebiere/site-api/internal/domain"
)

func TestContactService_Submit(t *testing.T) {
	repo := newFakeContactRepo()
	svc := NewContactService(repo)

	msg, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Rental",
		Message: "Can we rent the hall?",
	})
	require.NoError(t, err)
	assert.NotZero(t, msg.ID)
	assert.Len(t, repo.messages, 1)
}

func TestContactService_Submit_MissingFields(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, err := svc.Submit(context.Background(), ContactInput{Name: "Alice"})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Name, email, subject, and message are required", appErr.Message)
}

func TestContactService_Submit_InvalidEmail(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	_, err := svc.Submit(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "nope",
		Subject: "Hi",
		Message: "Hello",
	})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid email format", appErr.Message)
}

func TestContactService_Delete_NotFound(t *testing.T) {
	svc := NewContactService(newFakeContactRepo())

	err := svc.Delete(context.Background(), 7)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Message not found", appErr.Message)
}
