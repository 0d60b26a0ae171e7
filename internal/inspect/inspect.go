// Package inspect turns chunk types into reports checked against a policy.
package inspect

import (
	"errors"
	"fmt"
	"slices"

	"github.com/danmuck/pngme/internal/chunktype"
	"github.com/rs/zerolog/log"
)

// Problem codes.
const (
	ProblemLength    = "invalid_length"
	ProblemCharacter = "invalid_character"
	ProblemReserved  = "reserved_bit"
	ProblemPrivate   = "private"
	ProblemUnknown   = "unknown"
	ProblemDenied    = "denied"
)

// Policy adds caller rules on top of well-formedness.
type Policy struct {
	AllowPrivate bool
	RequireKnown bool
	Deny         []chunktype.ChunkType
}

func DefaultPolicy() Policy {
	return Policy{AllowPrivate: true}
}

type Problem struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Report is the outcome of inspecting one chunk type. Bytes and Flags are
// empty when the input could not be constructed.
type Report struct {
	Input       string           `json:"input,omitempty"`
	Text        string           `json:"text,omitempty"`
	Bytes       []int            `json:"bytes,omitempty"`
	Flags       *chunktype.Flags `json:"flags,omitempty"`
	Valid       bool             `json:"valid"`
	Known       bool             `json:"known"`
	Description string           `json:"description,omitempty"`
	Problems    []Problem        `json:"problems,omitempty"`
}

func (r Report) OK() bool {
	return len(r.Problems) == 0
}

// Inspect reports on an already constructed chunk type. Input is left for
// the caller to fill in.
func Inspect(ct chunktype.ChunkType, policy Policy) Report {
	raw := ct.Bytes()
	flags := ct.Flags()
	rep := Report{
		Text:  ct.String(),
		Bytes: []int{int(raw[0]), int(raw[1]), int(raw[2]), int(raw[3])},
		Flags: &flags,
		Valid: ct.IsValid(),
	}

	for i, b := range raw {
		if !chunktype.IsValidByte(b) {
			rep.addProblem(ProblemCharacter, "byte %d (0x%02x) at index %d is not an ASCII letter", b, b, i)
		}
	}
	if !flags.ReservedBitValid {
		rep.addProblem(ProblemReserved, "third byte must be uppercase")
	}
	info, known := chunktype.Lookup(ct)
	if known {
		rep.Known = true
		rep.Description = info.Description
	} else if policy.RequireKnown {
		rep.addProblem(ProblemUnknown, "not a registered chunk type")
	}
	// Registered private types (APNG) pass AllowPrivate.
	if !flags.Public && !known && !policy.AllowPrivate {
		rep.addProblem(ProblemPrivate, "private chunk types are not allowed")
	}
	if slices.Contains(policy.Deny, ct) {
		rep.addProblem(ProblemDenied, "chunk type is denied by policy")
	}

	log.Debug().
		Str("type", rep.Text).
		Bool("valid", rep.Valid).
		Bool("known", rep.Known).
		Int("problems", len(rep.Problems)).
		Msg("inspected chunk type")
	return rep
}

// InspectText parses s and inspects the result. A parse failure becomes a
// problem on the report rather than an error.
func InspectText(s string, policy Policy) Report {
	ct, err := chunktype.Parse(s)
	if err != nil {
		rep := Report{Input: s}
		rep.addParseProblem(err)
		log.Debug().Str("input", s).Err(err).Msg("chunk type rejected")
		return rep
	}
	rep := Inspect(ct, policy)
	rep.Input = s
	return rep
}

func (r *Report) addParseProblem(err error) {
	var lerr *chunktype.LengthError
	var cerr *chunktype.CharacterError
	switch {
	case errors.As(err, &lerr):
		r.addProblem(ProblemLength, "got %d bytes, want %d", lerr.Len, chunktype.Size)
	case errors.As(err, &cerr):
		r.addProblem(ProblemCharacter, "byte %d (0x%02x) at index %d is not an ASCII letter", cerr.Byte, cerr.Byte, cerr.Index)
	default:
		r.addProblem(ProblemCharacter, "%v", err)
	}
}

func (r *Report) addProblem(code, format string, args ...any) {
	r.Problems = append(r.Problems, Problem{Code: code, Detail: fmt.Sprintf(format, args...)})
}
