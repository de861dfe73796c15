package disk

import (
	"math"
	"strconv"
	"strings"
)

type SizeUnit string

const (
	UnitAuto SizeUnit = "0"
	UnitK    SizeUnit = "k"
	UnitM    SizeUnit = "m"
	UnitG    SizeUnit = "g"
	UnitT    SizeUnit = "t"
)

// unitRanks orders units for comparisons between sizes with different units.
var unitRanks = map[SizeUnit]int{
	UnitAuto: 0,
	UnitK:    1,
	UnitM:    2,
	UnitG:    3,
	UnitT:    4,
}

var unitBytes = map[SizeUnit]uint64{
	UnitK: 1024,
	UnitM: 1024 * 1024,
	UnitG: 1024 * 1024 * 1024,
	UnitT: 1024 * 1024 * 1024 * 1024,
}

// Size is a partition size as sgdisk understands it. The zero value of Unit
// is not valid; use AutoSize for "take all remaining space".
type Size struct {
	Magnitude float64
	Unit      SizeUnit
}

var (
	AutoSize = Size{Magnitude: 0, Unit: UnitAuto}

	// MinSize leaves room for sgdisk's default 2048 sector alignment.
	MinSize = Size{Magnitude: 2, Unit: UnitM}
)

func ParseSize(text string, partitionNumber int) (Size, error) {
	normalized := strings.ToLower(strings.ReplaceAll(text, " ", ""))
	normalized = strings.TrimPrefix(normalized, "+")

	if normalized == "0" {
		return AutoSize, nil
	}

	for _, suffix := range []string{"kib", "mib", "gib", "tib"} {
		if strings.HasSuffix(normalized, suffix) {
			normalized = strings.TrimSuffix(normalized, suffix) + suffix[:1]
			break
		}
	}

	if len(normalized) < 2 {
		return Size{}, SizeParseError{Text: text, Partition: partitionNumber}
	}

	unit := SizeUnit(normalized[len(normalized)-1:])
	if _, found := unitBytes[unit]; !found {
		return Size{}, SizeParseError{Text: text, Partition: partitionNumber}
	}

	magnitude, err := strconv.ParseFloat(normalized[:len(normalized)-1], 64)
	if err != nil || magnitude < 0 || math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return Size{}, SizeParseError{Text: text, Partition: partitionNumber}
	}

	return Size{Magnitude: magnitude, Unit: unit}, nil
}

// MustParseSize panics when text is not a valid size.
func MustParseSize(text string) Size {
	size, err := ParseSize(text, 0)
	if err != nil {
		panic(err.Error())
	}
	return size
}

// SizeFromBytes picks the largest unit that keeps the magnitude at or above one.
func SizeFromBytes(bytes uint64) Size {
	for _, unit := range []SizeUnit{UnitT, UnitG, UnitM, UnitK} {
		if bytes >= unitBytes[unit] {
			return Size{Magnitude: float64(bytes) / float64(unitBytes[unit]), Unit: unit}
		}
	}
	return Size{Magnitude: float64(bytes) / float64(unitBytes[UnitK]), Unit: UnitK}
}

func (s Size) IsAuto() bool { return s.Unit == UnitAuto }

func (s Size) Bytes() uint64 {
	if s.IsAuto() {
		return 0
	}
	return uint64(s.Magnitude * float64(unitBytes[s.Unit]))
}

// sectorBytes absorbs float truncation when sizes in different units are
// compared by byte count.
const sectorBytes = 512

// SameBytes reports whether both sizes describe the same number of bytes,
// whatever their units. Auto only equals auto.
func (s Size) SameBytes(other Size) bool {
	if s.IsAuto() || other.IsAuto() {
		return s.IsAuto() == other.IsAuto()
	}

	a, b := s.Bytes(), other.Bytes()
	if a > b {
		a, b = b, a
	}
	return b-a < sectorBytes
}

func (s Size) String() string {
	if s.IsAuto() {
		return "0"
	}
	return "+" + strconv.FormatFloat(s.Magnitude, 'f', -1, 64) + string(s.Unit)
}

// ToolArg is the form passed to sgdisk, e.g. "+512M".
func (s Size) ToolArg() string {
	if s.IsAuto() {
		return "0"
	}
	return strings.ToUpper(s.String())
}

// CompareSizes returns -1, 0 or 1. Sizes with different units are ordered by
// unit rank alone, so 2000M is smaller than 1G.
func CompareSizes(a, b Size) int {
	switch {
	case a.Magnitude == b.Magnitude:
		return 0
	case a.Unit == b.Unit:
		if a.Magnitude > b.Magnitude {
			return 1
		}
		return -1
	case unitRanks[a.Unit] > unitRanks[b.Unit]:
		return 1
	default:
		return -1
	}
}
