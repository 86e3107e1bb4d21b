package thread

import "fmt"

// numberingReserve is the suffix width withheld from the soft target and
// the hard maximum before packing when numbering is enabled, so appending
// " (i/N)" can never overflow a finished segment. Two digits per side
// covers any realistic thread.
const numberingReserve = 8

// labelOverhead bounds the fixed text around a single oversized item: the
// widest region label ("Documentation (cont.):") plus the bullet prefix.
const labelOverhead = 26

// Budget holds the packing constants for one deployment tier. All lengths
// are rune counts. Budgets are immutable configuration threaded into Pack,
// not ambient state, so short-form and long-form tiers can run side by
// side.
type Budget struct {
	MaxSegment       int  // hard per-segment cap
	MaxItem          int  // per-item cap before truncation
	SoftTarget       int  // fill target for combine/split decisions
	PreviewItems     int  // secondary items shown before elision
	InlineFeatureMax int  // feature count allowed on the single-segment fast path
	Numbered         bool // append " (i/N)" to every segment
}

var (
	// ShortForm targets the 280-character posting tier.
	ShortForm = Budget{
		MaxSegment:       280,
		MaxItem:          100,
		SoftTarget:       240,
		PreviewItems:     3,
		InlineFeatureMax: 3,
	}

	// LongForm targets the 4000-character posting tier.
	LongForm = Budget{
		MaxSegment:       4000,
		MaxItem:          300,
		SoftTarget:       3500,
		PreviewItems:     10,
		InlineFeatureMax: 10,
	}
)

// Validate checks that the budget can honour the packer's length
// guarantees. A budget that fails here is a programming-contract violation,
// not a data issue.
func (b Budget) Validate() error {
	if b.MaxSegment <= 0 {
		return fmt.Errorf("max segment length must be positive")
	}
	if b.MaxItem <= 3 {
		return fmt.Errorf("max item length must exceed the ellipsis marker")
	}
	if b.SoftTarget <= 0 || b.SoftTarget > b.MaxSegment {
		return fmt.Errorf("soft target must be positive and at most the max segment length")
	}
	if b.PreviewItems < 1 {
		return fmt.Errorf("preview item count must be at least 1")
	}

	reserve := 0
	if b.Numbered {
		reserve = numberingReserve
	}
	if b.MaxItem+labelOverhead+reserve > b.MaxSegment {
		return fmt.Errorf("max item length %d leaves no room for labels within max segment length %d",
			b.MaxItem, b.MaxSegment)
	}

	return nil
}
