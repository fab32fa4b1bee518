package allocation

// ShareType names an allocation mode as it appears on the wire.
type ShareType string

const (
	ShareEqual   ShareType = "equal"
	SharePortion ShareType = "portion"
	ShareAmount  ShareType = "amount"
)

// ParseShareType reports whether s names a known share type.
func ParseShareType(s string) (ShareType, bool) {
	switch t := ShareType(s); t {
	case ShareEqual, SharePortion, ShareAmount:
		return t, true
	}
	return "", false
}

// Share is the mode-specific part of an assignment. Only Equal, Portion and
// Amount implement it, so a magnitude can never be attached to the wrong mode.
type Share interface {
	Type() ShareType
	isShare()
}

// Equal splits what is left of an item, after amounts and portions, evenly
// among all equal assignees.
type Equal struct{}

// Portion takes a weighted part of what is left after amounts. Weights are
// unitless and only meaningful relative to other portions on the same item.
type Portion struct {
	Weight float64
}

// Amount is a fixed explicit currency amount.
type Amount struct {
	Value float64
}

func (Equal) Type() ShareType   { return ShareEqual }
func (Portion) Type() ShareType { return SharePortion }
func (Amount) Type() ShareType  { return ShareAmount }

func (Equal) isShare()   {}
func (Portion) isShare() {}
func (Amount) isShare()  {}

// NewShare builds the share for t. Missing magnitudes count as zero. It
// returns nil for an unknown type.
func NewShare(t ShareType, portion, amount *float64) Share {
	switch t {
	case ShareEqual:
		return Equal{}
	case SharePortion:
		return Portion{Weight: deref(portion)}
	case ShareAmount:
		return Amount{Value: deref(amount)}
	}
	return nil
}

// Magnitudes splits s back into its nullable wire fields.
func Magnitudes(s Share) (portion, amount *float64) {
	switch v := s.(type) {
	case Portion:
		w := v.Weight
		return &w, nil
	case Amount:
		a := v.Value
		return nil, &a
	}
	return nil, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
