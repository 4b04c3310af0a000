package domain

import "time"

// ToastType is the visual category of a notification
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

// IsValid returns true for known toast types
func (t ToastType) IsValid() bool {
	return t == ToastSuccess || t == ToastError || t == ToastInfo
}

// Toast is an ephemeral notification removed after ToastTTL
type Toast struct {
	ID        string
	Message   string
	Type      ToastType
	Icon      string
	CreatedAt time.Time
}
