package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func goodDoc(records ...string) gjson.Result {
	return gjson.Parse(`{"format":"GOOD","version":2,"artifacts":[` + strings.Join(records, ",") + `]}`)
}

func rec(slot, set, mainStat, extra string) string {
	s := fmt.Sprintf(`{"slotKey":%q,"setKey":%q,"mainStatKey":%q`, slot, set, mainStat)
	if extra != "" {
		s += "," + extra
	}
	return s + "}"
}

func TestConvertBucketsAndOrder(t *testing.T) {
	doc := goodDoc(
		rec("flower", "Scholar", "hp", `"location":"Bennett"`),
		rec("circlet", "NoblesseOblige", "critRate_", `"level":20`),
		rec("flower", "GildedDreams", "hp", `"level":4`),
		rec("plume", "Gambler", "atk", ""),
	)
	res := NewConverter().Convert(doc)

	require.Len(t, res.Buckets, 5)
	assert.Zero(t, res.Skipped)
	require.Len(t, res.Buckets[PosFlower], 2)
	assert.Equal(t, SetName("scholar"), res.Buckets[PosFlower][0].SetName)
	assert.Equal(t, "Bennett", res.Buckets[PosFlower][0].Equip)
	assert.Equal(t, SetName("GildedDreams"), res.Buckets[PosFlower][1].SetName)
	assert.Len(t, res.Buckets[PosFeather], 1)
	assert.Len(t, res.Buckets[PosHead], 1)
	assert.NotNil(t, res.Buckets[PosSand])
	assert.Empty(t, res.Buckets[PosSand])
	assert.NotNil(t, res.Buckets[PosCup])
	assert.Empty(t, res.Buckets[PosCup])
}

func TestConvertSkipsAndContinues(t *testing.T) {
	doc := goodDoc(
		`42`,
		rec("flower", "NotARealSet", "hp", ""),
		rec("circlet", "Scholar", "critRate_", `"rarity":5,"level":21`),
		rec("sands", "Scholar", "atk_", `"rarity":5,"level":20`),
		`null`,
	)
	res := NewConverter().Convert(doc)

	assert.Equal(t, 4, res.Skipped)
	assert.Equal(t, 1, res.Converted())
	assert.Equal(t, 5, res.Converted()+res.Skipped)
	assert.Len(t, res.Buckets[PosSand], 1)
	assert.Empty(t, res.Buckets[PosHead], "rejected level must not touch any bucket")
}

func TestConvertLevelBoundaryCountsOneSkip(t *testing.T) {
	ok := NewConverter().Convert(goodDoc(rec("flower", "Scholar", "hp", `"rarity":5,"level":20`)))
	assert.Zero(t, ok.Skipped)
	assert.Equal(t, 1, ok.Converted())

	bad := NewConverter().Convert(goodDoc(rec("flower", "Scholar", "hp", `"rarity":5,"level":21`)))
	assert.Equal(t, 1, bad.Skipped)
	assert.Zero(t, bad.Converted())
}

func TestConvertAllRejected(t *testing.T) {
	doc := goodDoc(`1`, `"x"`, rec("flower", "Nope", "hp", ""))
	res := NewConverter().Convert(doc)
	assert.Equal(t, 3, res.Skipped)
	for _, p := range AllPositions() {
		assert.Empty(t, res.Buckets[p], p)
	}
}

func TestConvertMissingOrInvalidArtifacts(t *testing.T) {
	for _, raw := range []string{`{"format":"GOOD"}`, `{"format":"GOOD","artifacts":{"0":{}}}`, `{"format":"GOOD","artifacts":null}`} {
		res := NewConverter().Convert(gjson.Parse(raw))
		assert.Zero(t, res.Skipped, raw)
		assert.Zero(t, res.Converted(), raw)
		assert.Len(t, res.Buckets, 5, raw)
	}
}

func TestConvertDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)
	doc := goodDoc(
		rec("flower", "NotARealSet", "hp", ""),
		rec("flower", "Scholar", "hp", `"substats":[{"key":"","value":0}]`),
	)
	res := NewConverter(WithLogger(log)).Convert(doc)
	require.Equal(t, 1, res.Skipped)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, buf.String())

	rejection := gjson.Parse(lines[0])
	assert.Equal(t, "warn", rejection.Get("level").String())
	assert.Equal(t, int64(0), rejection.Get("index").Int())
	assert.Equal(t, "setKey", rejection.Get("field").String())
	assert.Equal(t, `"NotARealSet"`, rejection.Get("value").String())
	assert.Equal(t, ErrUnknownSet.Error(), rejection.Get("reason").String())

	summary := gjson.Parse(lines[1])
	assert.Equal(t, int64(1), summary.Get("skipped").Int())
	assert.Equal(t, int64(2), summary.Get("total").Int())
	assert.Contains(t, summary.Get("message").String(), "1 artifact(s) skipped")
}

func TestConvertDebugDiagnosticsForDroppedSubstats(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	doc := goodDoc(rec("flower", "Scholar", "hp", `"substats":[{"key":"","value":0},{"key":"hp","value":5}]`))
	res := NewConverter(WithLogger(log)).Convert(doc)
	require.Zero(t, res.Skipped)

	line := gjson.Parse(strings.TrimSpace(buf.String()))
	assert.Equal(t, "debug", line.Get("level").String())
	assert.Equal(t, int64(1), line.Get("dropped").Int())
}

func TestConvertNoSummaryWithoutSkips(t *testing.T) {
	var buf bytes.Buffer
	NewConverter(WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))).Convert(goodDoc(rec("flower", "Scholar", "hp", "")))
	assert.Empty(t, buf.String())
}

func TestConvertWithResolver(t *testing.T) {
	res := NewConverter(WithResolver(fixedResolver)).Convert(goodDoc(rec("goblet", "Scholar", "pyro_dmg_", `"rarity":4,"level":16`)))
	require.Len(t, res.Buckets[PosCup], 1)
	assert.Equal(t, Tag{Name: StatFireBonus, Value: 416}, res.Buckets[PosCup][0].MainTag)

	def := NewConverter(WithResolver(nil)).Convert(goodDoc(rec("goblet", "Scholar", "pyro_dmg_", `"rarity":4,"level":16`)))
	assert.Equal(t, 0.348, def.Buckets[PosCup][0].MainTag.Value)
}

func TestConvertParallelMatchesSequential(t *testing.T) {
	slots := []string{"flower", "plume", "sands", "goblet", "circlet", "bogus"}
	var records []string
	for i := 0; i < 300; i++ {
		slot := slots[i%len(slots)]
		extra := fmt.Sprintf(`"level":%d,"location":"c%d"`, i%24, i)
		records = append(records, rec(slot, "Scholar", "hp", extra))
	}
	doc := goodDoc(records...)

	seq := NewConverter().Convert(doc)
	par := NewConverter(WithWorkers(8)).Convert(doc)

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel conversion differs (-seq +par):\n%s", diff)
	}
	assert.Equal(t, len(records), par.Converted()+par.Skipped)
}
