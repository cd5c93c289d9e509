package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gigfinder/gigfinder/internal/api/models"
	"github.com/go-playground/validator/v10"
)

// GigInput holds the user supplied fields of a gig.
type GigInput struct {
	Title       string `validate:"required"`
	Description string
	// Date is a calendar day formatted as YYYY-MM-DD.
	Date     string `validate:"required,datetime=2006-01-02,notpast"`
	Location string `validate:"required"`
}

// GigInputFromForm copies the posted form values.
func GigInputFromForm(f models.GigForm) GigInput {
	return GigInput{
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Location:    f.Location,
	}
}

var problemMessages = map[string]string{
	"Title.required":    MsgTitleRequired,
	"Date.required":     MsgDateRequired,
	"Date.datetime":     MsgDateInvalid,
	"Date.notpast":      MsgDateInPast,
	"Location.required": MsgLocationRequired,
}

func (e *Engine) registerValidators() error {
	return e.validate.RegisterValidation("notpast", e.validateNotPast)
}

// validateNotPast accepts dates on or after today.
func (e *Engine) validateNotPast(fl validator.FieldLevel) bool {
	d, err := time.Parse(models.DateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	return !d.Before(e.today())
}

// validateGig trims the fields of in, checks every one of them and returns the parsed date.
// All problems are reported together in a single *ValidationError.
func (e *Engine) validateGig(in *GigInput) (time.Time, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Location = strings.TrimSpace(in.Location)
	in.Date = strings.TrimSpace(in.Date)

	if err := e.validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return time.Time{}, fmt.Errorf("failed to validate gig: %w", err)
		}
		problems := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msg, ok := problemMessages[fe.Field()+"."+fe.Tag()]
			if !ok {
				log.Warn("unmapped validation failure", "field", fe.Field(), "tag", fe.Tag())
				msg = fe.Field() + " is invalid."
			}
			problems = append(problems, msg)
		}
		return time.Time{}, newValidationError(problems...)
	}

	date, err := time.Parse(models.DateLayout, in.Date)
	if err != nil {
		return time.Time{}, newValidationError(MsgDateInvalid)
	}
	return date, nil
}
