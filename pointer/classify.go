package pointer

import (
	"github.com/lixenwraith/archive/constants"
	"github.com/lixenwraith/archive/layout"
)

// Kind is the hover classification tier
type Kind int

const (
	KindNone Kind = iota
	KindInteractive
	KindMagnetic
)

func (k Kind) String() string {
	switch k {
	case KindInteractive:
		return "interactive"
	case KindMagnetic:
		return "magnetic"
	default:
		return "none"
	}
}

// Classification is the follower's hover state
// Label is only set for KindMagnetic
type Classification struct {
	Kind  Kind
	Label string
}

// Classify derives the hover state from the hovered chain, leaf first
// Magnetic wins over interactive; the label comes from the leaf, then the magnetic element,
// then the default
func Classify(chain []*layout.Element) Classification {
	if len(chain) == 0 {
		return Classification{}
	}

	if mag := layout.Closest(chain, constants.TagMagnetic); mag != nil {
		label := chain[0].Label
		if label == "" {
			label = mag.Label
		}
		if label == "" {
			label = constants.MagneticDefaultLabel
		}
		return Classification{Kind: KindMagnetic, Label: label}
	}

	for _, e := range chain {
		if e.Has(constants.TagLink) || e.Has(constants.TagButton) || e.Has(constants.TagClickable) {
			return Classification{Kind: KindInteractive}
		}
	}
	return Classification{}
}

// TierSize maps a classification to the follower diameter in pixels
func TierSize(c Classification) float64 {
	switch c.Kind {
	case KindMagnetic:
		return constants.FollowerSizeMagnetic
	case KindInteractive:
		return constants.FollowerSizeInteractive
	default:
		return constants.FollowerSizeResting
	}
}
