package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frizerio/salon-booking-service/internal/access"
	"github.com/frizerio/salon-booking-service/pkg/ptr"
	"github.com/frizerio/salon-booking-service/pkg/types"
)

func TestValidateRequest(t *testing.T) {
	actor := access.Actor{UserID: 7}
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name: "window path valid",
			req:  &Request{Actor: actor, WindowID: ptr.Ptr(int64(3))},
		},
		{
			name: "virtual slot valid",
			req: &Request{
				Actor:     actor,
				SalonID:   ptr.Ptr(int64(1)),
				Date:      &date,
				StartTime: ptr.Ptr(types.TimeString("10:00")),
				EndTime:   ptr.Ptr(types.TimeString("10:30")),
			},
		},
		{
			name:    "missing actor",
			req:     &Request{WindowID: ptr.Ptr(int64(3))},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "nothing specified",
			req:     &Request{Actor: actor},
			wantErr: ErrMissingData,
		},
		{
			name: "partial virtual slot",
			req: &Request{
				Actor:     actor,
				SalonID:   ptr.Ptr(int64(1)),
				Date:      &date,
				StartTime: ptr.Ptr(types.TimeString("10:00")),
			},
			wantErr: ErrMissingData,
		},
		{
			name: "start equals end",
			req: &Request{
				Actor:     actor,
				SalonID:   ptr.Ptr(int64(1)),
				Date:      &date,
				StartTime: ptr.Ptr(types.TimeString("10:00")),
				EndTime:   ptr.Ptr(types.TimeString("10:00")),
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "start after end",
			req: &Request{
				Actor:     actor,
				SalonID:   ptr.Ptr(int64(1)),
				Date:      &date,
				StartTime: ptr.Ptr(types.TimeString("11:00")),
				EndTime:   ptr.Ptr(types.TimeString("10:30")),
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name: "malformed start time",
			req: &Request{
				Actor:     actor,
				SalonID:   ptr.Ptr(int64(1)),
				Date:      &date,
				StartTime: ptr.Ptr(types.TimeString("1000")),
				EndTime:   ptr.Ptr(types.TimeString("10:30")),
			},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "non-positive window id",
			req:     &Request{Actor: actor, WindowID: ptr.Ptr(int64(0))},
			wantErr: ErrInvalidInput,
		},
		{
			name: "note too long",
			req: &Request{
				Actor:    actor,
				WindowID: ptr.Ptr(int64(3)),
				Note:     strings.Repeat("x", 251),
			},
			wantErr: ErrInvalidInput,
		},
		{
			// Лимит в символах: кириллическая заметка на 250 символов
			// занимает 500 байт, но проходит
			name: "multibyte note at limit",
			req: &Request{
				Actor:    actor,
				WindowID: ptr.Ptr(int64(3)),
				Note:     strings.Repeat("ж", 250),
			},
		},
		{
			name: "multibyte note too long",
			req: &Request{
				Actor:    actor,
				WindowID: ptr.Ptr(int64(3)),
				Note:     strings.Repeat("ж", 251),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
