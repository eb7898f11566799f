package signpost

import "strings"

// An Environment is a different context in which a signpost app operates.
type Environment string

const (
	Development Environment = "DEVELOPMENT"
	Production  Environment = "PRODUCTION"
	Staging     Environment = "STAGING"
	Testing     Environment = "TESTING"
)

// NewEnvironment normalizes val into an Environment,
// returning def if val names no known Environment.
func NewEnvironment(val string, def Environment) Environment {
	env := Environment(strings.ToUpper(strings.TrimSpace(val)))
	if err := env.Valid(); err != nil {
		return def
	}

	return env
}

func (e Environment) String() string { return string(e) }

func (e Environment) Valid() error {
	switch e {
	case Development, Production, Staging, Testing:
		return nil
	default:
		return ErrNotValid
	}
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsStaging() bool {
	return e == Staging
}

func (e Environment) IsTesting() bool {
	return e == Testing
}
