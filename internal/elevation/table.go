package elevation

// zipElevations maps US ZIP prefixes to representative ground elevations in
// feet. Three digit entries cover high altitude metro areas where the draft
// correction matters most; single digit entries provide a coarse regional
// floor for everything else.
var zipElevations = map[string]float64{
	// Northeast and Atlantic seaboard.
	"0": 150,
	"1": 300,
	"2": 350,
	// Southeast.
	"3": 250,
	// Midwest.
	"4": 700,
	"5": 950,
	"6": 900,
	// South central.
	"7": 500,
	// Mountain west.
	"8": 4500,
	// Pacific.
	"9": 500,

	// High altitude metros.
	"800": 5280, // Denver
	"801": 5430,
	"802": 5280,
	"803": 5328, // Boulder
	"804": 5675,
	"805": 4982, // Longmont
	"806": 7522, // mountain corridor
	"808": 6035, // Colorado Springs
	"810": 4695, // Pueblo
	"820": 6062, // Cheyenne
	"824": 6165,
	"828": 5550,
	"840": 4226, // Salt Lake City
	"841": 4226,
	"844": 4498, // Ogden
	"846": 4505, // Provo
	"850": 1086, // Phoenix
	"857": 2389, // Tucson
	"860": 6910, // Flagstaff
	"870": 5312, // Albuquerque
	"871": 5312,
	"875": 6996, // Santa Fe
	"877": 6732,
	"880": 3900,
	"885": 3740, // El Paso basin
	"889": 2001, // Las Vegas
	"890": 2001,
	"891": 2001,
	"894": 4505, // Reno
	"895": 4505,
	"897": 4685, // Carson City
	"590": 3120, // Billings
	"591": 3123,
	"594": 3870, // Helena
	"597": 4793, // Butte
	"598": 3209, // Missoula
	"599": 2900, // Kalispell
	"667": 3109, // western Kansas
	"690": 3231, // western Nebraska
	"691": 3622,
	"798": 3720, // Amarillo plateau
	"799": 3740, // El Paso
	"836": 2730, // Boise
	"837": 2730,
	"979": 4160, // Bend high desert
}

// canadaElevations maps the leading letter of a Canadian forward sortation
// area to a representative provincial elevation in feet.
var canadaElevations = map[string]float64{
	"A": 150,  // Newfoundland and Labrador
	"B": 160,  // Nova Scotia
	"C": 130,  // Prince Edward Island
	"E": 180,  // New Brunswick
	"G": 320,  // eastern Quebec
	"H": 118,  // Montreal
	"J": 300,  // western Quebec
	"K": 280,  // eastern Ontario
	"L": 570,  // central Ontario
	"M": 250,  // Toronto
	"N": 800,  // southwestern Ontario
	"P": 1100, // northern Ontario
	"R": 760,  // Manitoba
	"S": 1600, // Saskatchewan
	"T": 2500, // Alberta
	"V": 300,  // coastal British Columbia
	"X": 675,  // territories
	"Y": 2300, // Yukon
}
