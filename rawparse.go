package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// Reasons a GOOD artifact record is rejected. They are wrapped in *RecordError.
var (
	ErrNonObject       = errors.New("non-object record")
	ErrUnknownSlot     = errors.New("unknown slot key")
	ErrUnknownSet      = errors.New("unknown set key")
	ErrUnknownMainStat = errors.New("unknown main stat key")
	ErrInvalidRarity   = errors.New("invalid rarity")
	ErrInvalidLevel    = errors.New("invalid level")
)

const (
	defaultStar  = 5
	defaultLevel = 0
)

// RecordError describes why the artifact at Index was rejected.
type RecordError struct {
	Index int
	Field string // GOOD field name, empty for ErrNonObject
	Value string // raw JSON of the offending value, "<missing>" when absent
	Err   error
}

func (e *RecordError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("artifact #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("artifact #%d: %v: %s=%s", e.Index, e.Err, e.Field, e.Value)
}

func (e *RecordError) Unwrap() error { return e.Err }

func rawValue(v gjson.Result) string {
	if !v.Exists() {
		return "<missing>"
	}
	return v.Raw
}

// recordParser validates one GOOD artifact and maps it to mona. Each step
// returns on the first problem it finds.
type recordParser struct {
	idx int
	rec gjson.Result

	// substats silently dropped by the last parse
	dropped int
}

func newRecordParser(idx int, rec gjson.Result) *recordParser {
	return &recordParser{idx: idx, rec: rec}
}

func (p *recordParser) reject(field string, v gjson.Result, reason error) error {
	return &RecordError{Index: p.idx, Field: field, Value: rawValue(v), Err: reason}
}

func (p *recordParser) parse(resolve MainStatResolver) (Artifact, error) {
	if !p.rec.IsObject() {
		return Artifact{}, &RecordError{Index: p.idx, Value: rawValue(p.rec), Err: ErrNonObject}
	}
	pos, err := p.position()
	if err != nil {
		return Artifact{}, err
	}
	set, err := p.setName()
	if err != nil {
		return Artifact{}, err
	}
	ms, err := p.mainStat()
	if err != nil {
		return Artifact{}, err
	}
	star, err := p.star()
	if err != nil {
		return Artifact{}, err
	}
	level, err := p.level(star)
	if err != nil {
		return Artifact{}, err
	}

	a := Artifact{
		SetName:    set,
		Position:   pos,
		MainTag:    Tag{Name: ms, Value: resolve(ms, star, level)},
		NormalTags: p.substats(),
		Star:       star,
		Level:      level,
		Omit:       false,
	}
	if loc := lastField(p.rec, "location"); loc.Type == gjson.String && loc.Str != "" {
		a.Equip = loc.Str
	}
	return a, nil
}

func (p *recordParser) position() (Position, error) {
	v := lastField(p.rec, "slotKey")
	if v.Type == gjson.String {
		if pos, ok := lookupSlot(v.Str); ok {
			return pos, nil
		}
	}
	return "", p.reject("slotKey", v, ErrUnknownSlot)
}

func (p *recordParser) setName() (SetName, error) {
	v := lastField(p.rec, "setKey")
	if v.Type == gjson.String {
		if s, ok := lookupSet(v.Str); ok {
			return s, nil
		}
	}
	return "", p.reject("setKey", v, ErrUnknownSet)
}

func (p *recordParser) mainStat() (StatName, error) {
	v := lastField(p.rec, "mainStatKey")
	if v.Type == gjson.String {
		if info, ok := lookupStat(v.Str); ok {
			return info.Name, nil
		}
	}
	return "", p.reject("mainStatKey", v, ErrUnknownMainStat)
}

// star reads "rarity". Anything that is not a JSON number counts as absent.
func (p *recordParser) star() (int, error) {
	v := lastField(p.rec, "rarity")
	if v.Type != gjson.Number {
		return defaultStar, nil
	}
	if !isWhole(v.Num) || v.Num < 1 || v.Num > 5 {
		return 0, p.reject("rarity", v, ErrInvalidRarity)
	}
	return int(v.Num), nil
}

// level reads "level", bounded by star*4.
func (p *recordParser) level(star int) (int, error) {
	v := lastField(p.rec, "level")
	if v.Type != gjson.Number {
		return defaultLevel, nil
	}
	if !isWhole(v.Num) || v.Num < 0 || v.Num > float64(star*4) {
		return 0, p.reject("level", v, ErrInvalidLevel)
	}
	return int(v.Num), nil
}

// lastField returns the last occurrence of key in obj, so a repeated key
// resolves the way JSON.parse does rather than gjson's first match.
func lastField(obj gjson.Result, key string) gjson.Result {
	var v gjson.Result
	obj.ForEach(func(k, val gjson.Result) bool {
		if k.String() == key {
			v = val
		}
		return true
	})
	return v
}

func isWhole(f float64) bool {
	return !math.IsInf(f, 0) && f == math.Trunc(f)
}

// substats keeps entries with a known key and a numeric value, converting GOOD
// display percents (3.5) to mona fractions (0.035).
func (p *recordParser) substats() []Tag {
	tags := []Tag{}
	p.dropped = 0
	subs := lastField(p.rec, "substats")
	if !subs.IsArray() {
		return tags
	}
	for _, s := range subs.Array() {
		if !s.IsObject() {
			p.dropped++
			continue
		}
		key, value := lastField(s, "key"), lastField(s, "value")
		if key.Type != gjson.String || key.Str == "" || value.Type != gjson.Number {
			p.dropped++
			continue
		}
		info, ok := lookupStat(key.Str)
		if !ok || math.IsInf(value.Num, 0) || math.IsNaN(value.Num) {
			p.dropped++
			continue
		}
		val := value.Num
		if info.Percentage {
			val /= 100
		}
		tags = append(tags, Tag{Name: info.Name, Value: val})
	}
	return tags
}
