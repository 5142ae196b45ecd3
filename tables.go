package main

// GOOD slotKey -> mona position.
var slotKeyMap = map[string]Position{
	"flower":  PosFlower,
	"plume":   PosFeather,
	"sands":   PosSand,
	"goblet":  PosCup,
	"circlet": PosHead,
}

type statInfo struct {
	Name       StatName
	Percentage bool // GOOD value is a display percent (31.1 means 31.1%)
}

// GOOD stat key -> mona stat name.
var statKeyMap = map[string]statInfo{
	// flat
	"hp":     {StatLifeStatic, false},
	"atk":    {StatAttackStatic, false},
	"def":    {StatDefendStatic, false},
	"eleMas": {StatElementalMastery, false},
	// percent
	"hp_":       {StatLifePercentage, true},
	"atk_":      {StatAttackPercentage, true},
	"def_":      {StatDefendPercentage, true},
	"enerRech_": {StatRecharge, true},
	"critRate_": {StatCritical, true},
	"critDMG_":  {StatCriticalDamage, true},
	"heal_":     {StatCureEffect, true},
	// elemental / physical damage bonus
	"pyro_dmg_":     {StatFireBonus, true},
	"electro_dmg_":  {StatThunderBonus, true},
	"hydro_dmg_":    {StatWaterBonus, true},
	"cryo_dmg_":     {StatIceBonus, true},
	"anemo_dmg_":    {StatWindBonus, true},
	"geo_dmg_":      {StatRockBonus, true},
	"dendro_dmg_":   {StatDendroBonus, true},
	"physical_dmg_": {StatPhysicalBonus, true},
}

// GOOD setKey -> mona setName.
//
// mona names the sets it shipped before Echoes of an Offering in camelCase, several
// of them with a spelling of their own. Everything added afterwards reuses the
// PascalCase GOOD key. Both halves must stay literal.
var setKeyMap = map[string]SetName{
	"Adventurer":             "adventurer",
	"ArchaicPetra":           "archaicPetra",
	"Berserker":              "berserker",
	"BlizzardStrayer":        "blizzardStrayer",
	"BloodstainedChivalry":   "bloodstainedChivalry",
	"BraveHeart":             "braveHeart",
	"CrimsonWitchOfFlames":   "crimsonWitch",
	"DefendersWill":          "defenderWill",
	"EmblemOfSeveredFate":    "emblemOfSeveredFate",
	"Gambler":                "gambler",
	"GladiatorsFinale":       "gladiatorFinale",
	"HeartOfDepth":           "heartOfDepth",
	"HuskOfOpulentDreams":    "huskOfOpulentDreams",
	"Instructor":             "instructor",
	"Lavawalker":             "lavaWalker",
	"LuckyDog":               "luckyDog",
	"MaidenBeloved":          "maidenBeloved",
	"MartialArtist":          "martialArtist",
	"NoblesseOblige":         "noblesseOblige",
	"OceanHuedClam":          "oceanHuedClam",
	"PaleFlame":              "paleFlame",
	"PrayersForDestiny":      "prayersForDestiny",
	"PrayersForIllumination": "prayersForIllumination",
	"PrayersForWisdom":       "prayersForWisdom",
	"PrayersToSpringtime":    "prayersToSpringtime",
	"ResolutionOfSojourner":  "resolutionOfSojourner",
	"RetracingBolide":        "retracingBolide",
	"Scholar":                "scholar",
	"ShimenawasReminiscence": "shimenawaReminiscence",
	"TenacityOfTheMillelith": "tenacityOfTheMillelith",
	"TheExile":               "exile",
	"ThunderingFury":         "thunderingFury",
	"Thundersoother":         "thunderSmoother",
	"TinyMiracle":            "tinyMiracle",
	"TravelingDoctor":        "travelingDoctor",
	"ViridescentVenerer":     "viridescentVenerer",
	"WanderersTroupe":        "wandererTroupe",

	"DeepwoodMemories":                   "DeepwoodMemories",
	"EchoesOfAnOffering":                 "EchoesOfAnOffering",
	"FlowerOfParadiseLost":               "FlowerOfParadiseLost",
	"DesertPavilionChronicle":            "DesertPavilionChronicle",
	"GildedDreams":                       "GildedDreams",
	"GoldenTroupe":                       "GoldenTroupe",
	"MarechausseeHunter":                 "MarechausseeHunter",
	"NymphsDream":                        "NymphsDream",
	"VermillionHereafter":                "VermillionHereafter",
	"VourukashasGlow":                    "VourukashasGlow",
	"SongOfDaysPast":                     "SongOfDaysPast",
	"NighttimeWhispersInTheEchoingWoods": "NighttimeWhispersInTheEchoingWoods",
	"FragmentOfHarmonicWhimsy":           "FragmentOfHarmonicWhimsy",
	"UnfinishedReverie":                  "UnfinishedReverie",
	"ScrollOfTheHeroOfCinderCity":        "ScrollOfTheHeroOfCinderCity",
	"ObsidianCodex":                      "ObsidianCodex",
	"LongNightsOath":                     "LongNightsOath",
	"FinaleOfTheDeepGalleries":           "FinaleOfTheDeepGalleries",
	"NightOfTheSkysUnveiling":            "NightOfTheSkysUnveiling",
	"SilkenMoonsSerenade":                "SilkenMoonsSerenade",
	"ADayCarvedFromRisingWinds":          "ADayCarvedFromRisingWinds",
	"AubadeOfMorningstarAndMoon":         "AubadeOfMorningstarAndMoon",
}

func lookupSlot(key string) (Position, bool) {
	p, ok := slotKeyMap[key]
	return p, ok
}

func lookupSet(key string) (SetName, bool) {
	s, ok := setKeyMap[key]
	return s, ok
}

func lookupStat(key string) (statInfo, bool) {
	s, ok := statKeyMap[key]
	return s, ok
}

// percentageStats is the set of mona stats held as decimal fractions.
var percentageStats = map[StatName]bool{}

func init() {
	for _, info := range statKeyMap {
		if info.Percentage {
			percentageStats[info.Name] = true
		}
	}
}

// IsPercentageStat reports whether mona stores the stat as a decimal fraction.
func IsPercentageStat(name StatName) bool {
	return percentageStats[name]
}
