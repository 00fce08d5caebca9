package vercomp

import (
	"github.com/Masterminds/semver/v3"
)

// compare result
const (
	Less    = -1
	Equal   = 0
	Greater = 1
	Invalid = 0
)

type CompareResult struct {
	Comparable bool
	Result     int // -1, 0, 1 (only when comparable)
}

type Parser interface {
	CanParse(version string) bool
	Parse(version string) (any, error)
	Compare(a, b any) int
}

// GameVersionParser parses game and proxy versions such as "1.20",
// "1.20.4", "1.21-pre1" or "3.3.0-SNAPSHOT". Missing minor or patch parts
// are treated as zero.
type GameVersionParser struct{}

func (p *GameVersionParser) CanParse(v string) bool {
	_, err := semver.NewVersion(v)
	return err == nil
}

func (p *GameVersionParser) Parse(v string) (any, error) {
	return semver.NewVersion(v)
}

func (p *GameVersionParser) Compare(a, b any) int {
	verA := a.(*semver.Version)
	verB := b.(*semver.Version)
	return verA.Compare(verB)
}

type VersionComparator struct {
	parsers []Parser
}

func NewComparator() *VersionComparator {
	return &VersionComparator{
		parsers: []Parser{
			&GameVersionParser{},
		},
	}
}

func (c *VersionComparator) Compare(v1, v2 string) CompareResult {
	for _, p := range c.parsers {
		if !p.CanParse(v1) || !p.CanParse(v2) {
			continue
		}
		parsed1, err := p.Parse(v1)
		if err != nil {
			continue
		}
		parsed2, err := p.Parse(v2)
		if err != nil {
			continue
		}
		// both versions must come from the same parser
		return CompareResult{
			Comparable: true,
			Result:     p.Compare(parsed1, parsed2),
		}
	}
	return CompareResult{Comparable: false}
}

// FirstOutOfOrder returns the index of the first version that is lower than
// its predecessor, or -1 when the list is ascending. Pairs that cannot be
// compared are skipped.
func (c *VersionComparator) FirstOutOfOrder(versions []string) int {
	for i := 1; i < len(versions); i++ {
		ret := c.Compare(versions[i-1], versions[i])
		if ret.Comparable && ret.Result == Greater {
			return i
		}
	}
	return -1
}
