package business

import (
	"context"
	"fmt"

	"github.com/International-Combat-Archery-Alliance/account-signup/validation"
)

// LookupResult is what the tax ID registry says about a GSTIN. Payload is the
// registry's business record and is not interpreted here.
type LookupResult struct {
	Status  Status
	Payload map[string]any
}

type Service interface {
	Lookup(ctx context.Context, taxID string) (LookupResult, error)
}

type Result struct {
	TaxID   string
	Status  Status
	Payload map[string]any
}

func Unverified(taxID string) Result {
	return Result{TaxID: taxID, Status: UNVERIFIED}
}

type Verifier struct {
	service Service
}

func NewVerifier(service Service) *Verifier {
	return &Verifier{
		service: service,
	}
}

// Verify asks the registry about taxID. Local preconditions are checked first
// and never cost a service call. A REJECTED result is not an error.
func (v *Verifier) Verify(ctx context.Context, isSeller bool, taxID string) (Result, error) {
	if !isSeller {
		return Unverified(taxID), NewLocalPreconditionError("Business verification is only needed when registering as a seller", nil)
	}
	if err := validation.Validate(validation.TAX_ID, taxID); err != nil {
		return Unverified(taxID), NewLocalPreconditionError("GST number is not well formed", err)
	}

	resp, err := v.service.Lookup(ctx, taxID)
	if err != nil {
		return Unverified(taxID), NewVerificationServiceError(fmt.Sprintf("Failed to look up GST number %s", taxID), err)
	}

	switch resp.Status {
	case VERIFIED, REJECTED:
		return Result{
			TaxID:   taxID,
			Status:  resp.Status,
			Payload: resp.Payload,
		}, nil
	default:
		return Unverified(taxID), NewVerificationServiceError(fmt.Sprintf("Registry returned unexpected status %s", resp.Status), nil)
	}
}
