package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudent(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		inRoll  string
		inMarks string
		want    Student
		wantErr error
	}{
		{"valid", "Alice", "R-01", "87", Student{Name: "Alice", Roll: "R-01", Marks: 87}, nil},
		{"trims whitespace", "  Bob ", " R-02 ", " 55 ", Student{Name: "Bob", Roll: "R-02", Marks: 55}, nil},
		{"zero marks", "Cara", "R-03", "0", Student{Name: "Cara", Roll: "R-03", Marks: 0}, nil},
		{"empty name", "", "R-04", "10", Student{}, ErrMissingFields},
		{"empty roll", "Dan", "", "10", Student{}, ErrMissingFields},
		{"empty marks", "Eve", "R-05", "", Student{}, ErrMissingFields},
		{"blank marks", "Eve", "R-05", "   ", Student{}, ErrMissingFields},
		{"non-numeric marks", "Fay", "R-06", "ninety", Student{}, ErrInvalidMarks},
		{"negative marks", "Gus", "R-07", "-3", Student{}, ErrInvalidMarks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewStudent(tt.inName, tt.inRoll, tt.inMarks)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCancellationToken(t *testing.T) {
	token := NewCancellationToken()
	assert.False(t, token.IsCancelled())

	token.Cancel()
	assert.True(t, token.IsCancelled())

	token.Reset()
	assert.False(t, token.IsCancelled())
}
