package profile

// Table is the static, read-only profile list in source order.
type Table []Profile

// Validate checks every profile's keys.
func (t Table) Validate() error {
	for _, p := range t {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Match returns the first profile whose keys equal mbtiType and riasecCode
// exactly (case-sensitive). The bool is false when nothing matches; that is
// an expected outcome, not an error.
func Match(t Table, mbtiType, riasecCode string) (Profile, bool) {
	for _, p := range t {
		if p.MBTIType == mbtiType && p.RIASECCode == riasecCode {
			return p, true
		}
	}
	return Profile{}, false
}

// CodeLengths returns the distinct RIASEC code lengths present in t.
// Used to warn when the table and the configured code length disagree.
func (t Table) CodeLengths() map[int]int {
	out := make(map[int]int)
	for _, p := range t {
		out[len(p.RIASECCode)]++
	}
	return out
}
