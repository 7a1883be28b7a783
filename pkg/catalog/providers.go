// Package catalog exposes the static reference configuration consumed by the
// surrounding application: the supported financial providers per account type
// and the two category seed tiers. The tables are package-level constants in
// spirit; nothing mutates them after init and the store never validates
// writes against them.
package catalog

import "github.com/finflow/finflow/pkg/domain"

// Provider is one supported financial institution and its product names for a
// given account type. Products holds card names for credit providers and
// account names for bank and investment providers.
type Provider struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Products []string `json:"products"`
}

// accountProviders is the full catalog, keyed by account type.
var accountProviders = map[domain.AccountType][]Provider{
	domain.AccountTypeCredit: {
		{ID: "amex", Name: "American Express", Products: []string{"Platinum Card", "Gold Card", "Blue Cash"}},
		{ID: "chase", Name: "Chase", Products: []string{"Sapphire Reserve", "Freedom Unlimited", "Ink Business"}},
		{ID: "citi", Name: "Citi", Products: []string{"Double Cash", "Premier", "Custom Cash"}},
	},
	domain.AccountTypeBank: {
		{ID: "chase", Name: "Chase", Products: []string{"Checking", "Savings"}},
		{ID: "bofa", Name: "Bank of America", Products: []string{"Checking", "Savings", "Business"}},
		{ID: "wells", Name: "Wells Fargo", Products: []string{"Everyday Checking", "Way2Save"}},
	},
	domain.AccountTypeInvestment: {
		{ID: "fidelity", Name: "Fidelity", Products: []string{"Investment Account", "Roth IRA", "401(k)"}},
		{ID: "vanguard", Name: "Vanguard", Products: []string{"Brokerage", "Roth IRA", "Traditional IRA"}},
		{ID: "schwab", Name: "Charles Schwab", Products: []string{"Brokerage", "Retirement", "Checking"}},
	},
}

// ProvidersFor returns the providers supported for the account type. The
// returned slice is a copy; callers may not mutate the catalog.
func ProvidersFor(t domain.AccountType) []Provider {
	src, ok := accountProviders[t]
	if !ok {
		return nil
	}
	out := make([]Provider, len(src))
	copy(out, src)
	return out
}

// FindProvider looks up a provider by account type and provider id.
func FindProvider(t domain.AccountType, id string) (Provider, bool) {
	for _, p := range accountProviders[t] {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// IsSupportedProvider reports whether the (type, provider) pair is in the catalog.
func IsSupportedProvider(t domain.AccountType, id string) bool {
	_, ok := FindProvider(t, id)
	return ok
}

// AccountTypes lists the account types that have catalog entries.
func AccountTypes() []domain.AccountType {
	return []domain.AccountType{
		domain.AccountTypeCredit,
		domain.AccountTypeBank,
		domain.AccountTypeInvestment,
	}
}
