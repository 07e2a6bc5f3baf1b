package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/model"
)

// Form field indices, in display order.
const (
	fieldName = iota
	fieldIssuer
	fieldFaceValue
	fieldCouponRate
	fieldRating
	fieldIssueDate
	fieldMaturityDate
	fieldStatus
	fieldCurrency
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name", "Issuer", "Face Value", "Coupon Rate (%)",
	"Rating", "Issue Date", "Maturity Date", "Status", "Currency",
}

// formModel is the add/edit dialog. A nil initial bond means "create"; the
// id is carried through so submission turns into an update otherwise.
type formModel struct {
	id     *int64
	inputs [fieldCount]textinput.Model
	focus  int
}

// newForm builds the form, prefilled from an existing bond when editing.
// Facet values show up as placeholders for the classification fields.
func newForm(initial *model.Bond, facets catalog.Facets) formModel {
	var f formModel

	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 64
		f.inputs[i] = in
	}
	f.inputs[fieldIssueDate].Placeholder = "YYYY-MM-DD"
	f.inputs[fieldMaturityDate].Placeholder = "YYYY-MM-DD"
	if len(facets.Ratings) > 0 {
		f.inputs[fieldRating].Placeholder = strings.Join(facets.Ratings, " / ")
	}
	if len(facets.Statuses) > 0 {
		f.inputs[fieldStatus].Placeholder = strings.Join(facets.Statuses, " / ")
	}
	if len(facets.Currencies) > 0 {
		f.inputs[fieldCurrency].Placeholder = strings.Join(facets.Currencies, " / ")
	}

	if initial != nil {
		f.id = initial.ID
		f.inputs[fieldName].SetValue(initial.Name)
		f.inputs[fieldIssuer].SetValue(initial.Issuer)
		if initial.FaceValue.Valid {
			f.inputs[fieldFaceValue].SetValue(initial.FaceValue.Decimal.String())
		}
		if initial.CouponRate.Valid {
			f.inputs[fieldCouponRate].SetValue(initial.CouponRate.Decimal.String())
		}
		f.inputs[fieldRating].SetValue(initial.Rating)
		f.inputs[fieldIssueDate].SetValue(initial.IssueDate)
		f.inputs[fieldMaturityDate].SetValue(initial.MaturityDate)
		f.inputs[fieldStatus].SetValue(initial.Status)
		f.inputs[fieldCurrency].SetValue(initial.Currency)
	}

	return f
}

// Editing reports whether the form updates an existing record.
func (f *formModel) Editing() bool {
	return f.id != nil
}

// Focus focuses the first field.
func (f *formModel) Focus() tea.Cmd {
	f.focus = 0
	return f.inputs[0].Focus()
}

func (f *formModel) onLastField() bool {
	return f.focus == fieldCount-1
}

// Update moves focus on tab/shift-tab and forwards everything else to the
// focused input.
func (f formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down", "enter":
			return f.moveFocus(1)
		case "shift+tab", "up":
			return f.moveFocus(-1)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f formModel) moveFocus(delta int) (formModel, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f, f.inputs[f.focus].Focus()
}

// Bond assembles the record from the current field values. Empty numeric
// fields become null, matching the wire contract.
func (f *formModel) Bond() (*model.Bond, error) {
	b := &model.Bond{
		ID:           f.id,
		Name:         strings.TrimSpace(f.inputs[fieldName].Value()),
		Issuer:       strings.TrimSpace(f.inputs[fieldIssuer].Value()),
		Rating:       strings.TrimSpace(f.inputs[fieldRating].Value()),
		IssueDate:    strings.TrimSpace(f.inputs[fieldIssueDate].Value()),
		MaturityDate: strings.TrimSpace(f.inputs[fieldMaturityDate].Value()),
		Status:       strings.TrimSpace(f.inputs[fieldStatus].Value()),
		Currency:     strings.TrimSpace(f.inputs[fieldCurrency].Value()),
	}

	var err error
	if b.FaceValue, err = parseOptionalDecimal(f.inputs[fieldFaceValue].Value()); err != nil {
		return nil, fmt.Errorf("invalid face value: %w", err)
	}
	if b.CouponRate, err = parseOptionalDecimal(f.inputs[fieldCouponRate].Value()); err != nil {
		return nil, fmt.Errorf("invalid coupon rate: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func parseOptionalDecimal(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
