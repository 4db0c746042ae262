package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/yourusername/bet-ledger/internal/models"
)

// Validator checks entity field constraints and translates the first
// failure into a models.ValidationError named after the JSON field.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports JSON field names
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("cents", validateCents)
	return &Validator{validate: v}
}

// validateCents accepts floats with at most two decimal places, the scale of
// every money and percentage column.
func validateCents(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(fl.Field().Float()).Exponent() >= -2
	}
	return false
}

// Struct validates s against its validate tags
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}
	fe := fieldErrors[0]
	return models.NewValidationError(fe.Field(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "cents":
		return "must have at most 2 decimal places"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

// maxAmount is the largest value the profit/loss column holds.
var maxAmount = decimal.RequireFromString("99999999.99")

// CheckPayout rejects bets whose potential profit, stake × (odds − 1), does
// not fit the profit/loss column.
func CheckPayout(bet *models.Bet) error {
	profit := decimal.NewFromFloat(bet.Stake).Mul(decimal.NewFromFloat(bet.BookmakerOdds).Sub(decimal.NewFromInt(1)))
	if profit.GreaterThan(maxAmount) {
		return models.NewValidationError("stake", "potential profit must be at most "+maxAmount.StringFixed(2))
	}
	return nil
}

// CheckDistinctTeams is the first cross-field rule. It needs no lookups, so
// it runs before any store access.
func CheckDistinctTeams(bet *models.Bet) error {
	if bet.HomeTeamID == bet.AwayTeamID {
		return models.NewValidationError("away_team_id", "home and away team must be different")
	}
	return nil
}

// BetRefs are the lookup entities a bet points at.
type BetRefs struct {
	Sport       *models.Sport
	Competition *models.Competition
	HomeTeam    *models.Team
	AwayTeam    *models.Team
	BetType     *models.BetType
	Bookmaker   *models.Bookmaker
}

// CheckConsistency runs the cross-field rules in order and returns the first
// violation.
func CheckConsistency(bet *models.Bet, refs BetRefs) error {
	if err := CheckDistinctTeams(bet); err != nil {
		return err
	}
	if refs.HomeTeam.SportID != refs.AwayTeam.SportID {
		return models.NewValidationError("away_team_id", "both teams must belong to the same sport")
	}
	if refs.Competition.SportID != bet.SportID {
		return models.NewValidationError("competition_id", "competition must belong to the selected sport")
	}
	if refs.HomeTeam.SportID != bet.SportID {
		return models.NewValidationError("home_team_id", "home team must belong to the selected sport")
	}
	if refs.AwayTeam.SportID != bet.SportID {
		return models.NewValidationError("away_team_id", "away team must belong to the selected sport")
	}
	return nil
}
