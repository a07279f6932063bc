//go:generate go tool stringer -type=Status

package challenge

type Status int

const (
	IDLE Status = iota
	ISSUED
	CONFIRMING
	CONFIRMED
	FAILED
)
