package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"orcamento_bot/internal/domain/entities"
	"orcamento_bot/internal/usecase/interfaces"
)

const DefaultPostalLookupTimeout = 5 * time.Second

var ErrInvalidPostalCode = errors.New("invalid postal code")

// IAddressUseCase resolves postal codes for the conversation and importers.
//
// Provider errors and timeouts are reported as not-found so the
// conversation can ask again; they never surface as errors.
type IAddressUseCase interface {
	Resolve(ctx context.Context, raw string) (entities.Address, bool, error)
}

type AddressUseCase struct {
	lookup  interfaces.IPostalLookup
	timeout time.Duration
	metrics interfaces.IMetrics
}

var _ IAddressUseCase = (*AddressUseCase)(nil)

func NewAddressUseCase(lookup interfaces.IPostalLookup, timeout time.Duration, metrics interfaces.IMetrics) *AddressUseCase {
	if timeout <= 0 {
		timeout = DefaultPostalLookupTimeout
	}
	if metrics == nil {
		metrics = interfaces.NopMetrics{}
	}
	return &AddressUseCase{lookup: lookup, timeout: timeout, metrics: metrics}
}

// PostalCodeDigits returns the 8 digits of raw, or "" when raw does not
// hold exactly 8 digits.
func PostalCodeDigits(raw string) string {
	d := DigitsOnly(raw)
	if len(d) != 8 {
		return ""
	}
	return d
}

func (u *AddressUseCase) Resolve(ctx context.Context, raw string) (entities.Address, bool, error) {
	cep := PostalCodeDigits(raw)
	if cep == "" {
		return entities.Address{}, false, ErrInvalidPostalCode
	}

	lookupCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	addr, found, err := u.lookup.LookupPostalCode(lookupCtx, cep)
	if err != nil {
		log.Printf("[address][usecase] lookup failed cep=%s err=%v", cep, err)
		u.metrics.ObservePostalLookup("error")
		return entities.Address{}, false, nil
	}
	if !found {
		log.Printf("[address][usecase] cep not found cep=%s", cep)
		u.metrics.ObservePostalLookup("not_found")
		return entities.Address{}, false, nil
	}
	addr.PostalCode = cep
	u.metrics.ObservePostalLookup("found")
	return addr, true, nil
}
