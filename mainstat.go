package main

// MainStatResolver returns the main-stat value of an artifact with the given
// rarity and level. Percentage stats come back as decimal fractions.
type MainStatResolver func(name StatName, star, level int) float64

type mainStatCurve int

const (
	curveNone mainStatCurve = iota
	curveHP
	curveATK
	curveHPATKPercent // also elemental damage bonus
	curveDEFPercent   // also physical damage bonus
	curveEM
	curveER
	curveCritRate
	curveCritDMG
	curveHeal
)

var mainStatCurveOf = map[StatName]mainStatCurve{
	StatLifeStatic:       curveHP,
	StatAttackStatic:     curveATK,
	StatLifePercentage:   curveHPATKPercent,
	StatAttackPercentage: curveHPATKPercent,
	StatFireBonus:        curveHPATKPercent,
	StatThunderBonus:     curveHPATKPercent,
	StatWaterBonus:       curveHPATKPercent,
	StatIceBonus:         curveHPATKPercent,
	StatWindBonus:        curveHPATKPercent,
	StatRockBonus:        curveHPATKPercent,
	StatDendroBonus:      curveHPATKPercent,
	StatDefendPercentage: curveDEFPercent,
	StatPhysicalBonus:    curveDEFPercent,
	StatElementalMastery: curveEM,
	StatRecharge:         curveER,
	StatCritical:         curveCritRate,
	StatCriticalDamage:   curveCritDMG,
	StatCureEffect:       curveHeal,
}

// mainStatCurves[curve][star-1][level] holds the in-game main-stat value at
// each enhancement level. 1 and 2 star artifacts stop at +4.
var mainStatCurves = map[mainStatCurve][5][]float64{
	curveHP: {
		{129, 161, 194, 226, 258},
		{258, 332, 405, 478, 552},
		{430, 552, 674, 796, 918, 1040, 1162, 1283, 1405, 1527, 1649, 1771, 1893},
		{645, 828, 1011, 1194, 1377, 1559, 1742, 1925, 2108, 2291, 2474, 2657, 2839, 3022, 3205, 3388, 3571},
		{717, 920, 1123, 1326, 1530, 1733, 1936, 2139, 2342, 2545, 2749, 2952, 3155, 3358, 3561, 3764, 3967, 4171, 4374, 4577, 4780},
	},
	curveATK: {
		{8, 10, 12, 15, 17},
		{17, 22, 26, 31, 36},
		{28, 36, 44, 52, 60, 68, 76, 84, 91, 99, 107, 115, 123},
		{42, 54, 66, 78, 90, 102, 113, 125, 137, 149, 161, 173, 185, 197, 209, 221, 232},
		{47, 60, 73, 86, 100, 113, 126, 139, 152, 166, 179, 192, 205, 219, 232, 245, 258, 272, 285, 298, 311},
	},
	curveHPATKPercent: {
		{0.031, 0.037, 0.044, 0.05, 0.056},
		{0.042, 0.051, 0.061, 0.07, 0.079},
		{0.052, 0.067, 0.082, 0.097, 0.112, 0.127, 0.142, 0.156, 0.171, 0.186, 0.201, 0.216, 0.231},
		{0.063, 0.081, 0.099, 0.116, 0.134, 0.152, 0.17, 0.188, 0.206, 0.223, 0.241, 0.259, 0.277, 0.295, 0.313, 0.33, 0.348},
		{0.07, 0.09, 0.11, 0.129, 0.149, 0.169, 0.189, 0.209, 0.228, 0.248, 0.268, 0.288, 0.308, 0.328, 0.347, 0.367, 0.387, 0.407, 0.427, 0.446, 0.466},
	},
	curveDEFPercent: {
		{0.039, 0.047, 0.055, 0.062, 0.07},
		{0.052, 0.064, 0.076, 0.087, 0.099},
		{0.066, 0.084, 0.103, 0.121, 0.14, 0.158, 0.177, 0.196, 0.214, 0.233, 0.251, 0.27, 0.288},
		{0.079, 0.101, 0.123, 0.146, 0.168, 0.19, 0.212, 0.235, 0.257, 0.279, 0.302, 0.324, 0.346, 0.368, 0.391, 0.413, 0.435},
		{0.087, 0.112, 0.137, 0.162, 0.186, 0.211, 0.236, 0.261, 0.286, 0.31, 0.335, 0.36, 0.385, 0.409, 0.434, 0.459, 0.484, 0.508, 0.533, 0.558, 0.583},
	},
	curveEM: {
		{12.6, 15.0, 17.5, 19.9, 22.3},
		{16.8, 20.5, 24.2, 27.9, 31.6},
		{21.0, 26.9, 32.9, 38.8, 44.8, 50.7, 56.7, 62.6, 68.5, 74.5, 80.4, 86.4, 92.3},
		{25.2, 32.3, 39.4, 46.6, 53.7, 60.8, 68.0, 75.1, 82.2, 89.4, 96.5, 103.6, 110.8, 117.9, 125.0, 132.2, 139.3},
		{28.0, 35.9, 43.8, 51.8, 59.7, 67.6, 75.5, 83.5, 91.4, 99.3, 107.3, 115.2, 123.1, 131.0, 139.0, 146.9, 154.8, 162.7, 170.7, 178.6, 186.5},
	},
	curveER: {
		{0.035, 0.042, 0.049, 0.055, 0.062},
		{0.047, 0.057, 0.068, 0.078, 0.088},
		{0.058, 0.075, 0.091, 0.108, 0.124, 0.141, 0.157, 0.174, 0.19, 0.207, 0.223, 0.24, 0.256},
		{0.07, 0.09, 0.11, 0.129, 0.149, 0.169, 0.189, 0.209, 0.228, 0.248, 0.268, 0.288, 0.308, 0.328, 0.347, 0.367, 0.387},
		{0.078, 0.1, 0.122, 0.144, 0.166, 0.188, 0.21, 0.232, 0.254, 0.276, 0.298, 0.32, 0.342, 0.364, 0.386, 0.408, 0.43, 0.452, 0.474, 0.496, 0.518},
	},
	curveCritRate: {
		{0.021, 0.025, 0.029, 0.033, 0.037},
		{0.028, 0.034, 0.041, 0.047, 0.053},
		{0.035, 0.045, 0.055, 0.065, 0.075, 0.085, 0.096, 0.106, 0.116, 0.126, 0.136, 0.146, 0.156},
		{0.042, 0.054, 0.066, 0.078, 0.09, 0.101, 0.113, 0.125, 0.137, 0.149, 0.161, 0.173, 0.185, 0.197, 0.208, 0.22, 0.232},
		{0.047, 0.06, 0.073, 0.086, 0.099, 0.113, 0.126, 0.139, 0.152, 0.166, 0.179, 0.192, 0.205, 0.218, 0.232, 0.245, 0.258, 0.271, 0.284, 0.298, 0.311},
	},
	curveCritDMG: {
		{0.042, 0.05, 0.059, 0.067, 0.075},
		{0.056, 0.068, 0.081, 0.093, 0.105},
		{0.07, 0.09, 0.11, 0.13, 0.15, 0.17, 0.191, 0.211, 0.231, 0.251, 0.271, 0.291, 0.311},
		{0.084, 0.108, 0.131, 0.155, 0.179, 0.203, 0.227, 0.25, 0.274, 0.298, 0.322, 0.345, 0.369, 0.393, 0.417, 0.441, 0.464},
		{0.093, 0.12, 0.146, 0.173, 0.199, 0.225, 0.252, 0.278, 0.305, 0.331, 0.357, 0.384, 0.41, 0.437, 0.463, 0.49, 0.516, 0.542, 0.569, 0.595, 0.622},
	},
	curveHeal: {
		{0.024, 0.029, 0.034, 0.038, 0.043},
		{0.032, 0.039, 0.047, 0.054, 0.061},
		{0.04, 0.052, 0.063, 0.075, 0.086, 0.098, 0.109, 0.121, 0.132, 0.144, 0.155, 0.167, 0.178},
		{0.048, 0.062, 0.076, 0.09, 0.103, 0.117, 0.131, 0.144, 0.158, 0.172, 0.186, 0.199, 0.213, 0.227, 0.24, 0.254, 0.268},
		{0.054, 0.069, 0.084, 0.1, 0.115, 0.13, 0.145, 0.161, 0.176, 0.191, 0.206, 0.221, 0.237, 0.252, 0.267, 0.282, 0.298, 0.313, 0.328, 0.343, 0.359},
	},
}

// MainStatValue is the default MainStatResolver. It looks the value up in the
// per-level tables; levels past the in-game cap of a rarity resolve to its max
// value. Stats without a main-stat curve (flat DEF) resolve to 0.
func MainStatValue(name StatName, star, level int) float64 {
	curve, ok := mainStatCurveOf[name]
	if !ok || star < 1 || star > 5 {
		return 0
	}
	values := mainStatCurves[curve][star-1]
	switch {
	case level <= 0:
		return values[0]
	case level >= len(values):
		return values[len(values)-1]
	}
	return values[level]
}
