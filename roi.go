package rental

import "encoding/json"

// ROI is a return on investment in percent. The zero value is undefined, which
// is the result when the investment total is zero.
type ROI struct {
	percent Percent
	defined bool
}

// NewROI returns a defined ROI.
func NewROI(p Percent) ROI { return ROI{percent: p, defined: true} }

// Defined reports whether the ROI could be computed.
func (r ROI) Defined() bool { return r.defined }

// Percent returns the ROI and whether it is defined.
func (r ROI) Percent() (Percent, bool) { return r.percent, r.defined }

// Equal reports whether both ROI are undefined or have equal percents.
func (r ROI) Equal(s ROI) bool {
	if r.defined != s.defined {
		return false
	}
	return !r.defined || r.percent.Equal(s.percent)
}

// String returns the percent, or "n/a" for an undefined ROI.
func (r ROI) String() string {
	if !r.defined {
		return "n/a"
	}
	return r.percent.String()
}

// MarshalJSON encodes the percent as a number, or null if undefined.
func (r ROI) MarshalJSON() ([]byte, error) {
	if !r.defined {
		return []byte("null"), nil
	}
	return json.Marshal(float64(r.percent))
}
