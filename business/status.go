//go:generate go tool stringer -type=Status

package business

type Status int

const (
	UNVERIFIED Status = iota
	VERIFIED
	REJECTED
)
