package units

// Physical constants and unit scales in mks. Astronomical values follow the
// IAU 2012/2015 nominal definitions.
const (
	SpeedOfLightMks = 299792458.0           // m / s
	SpeedOfLightKms = SpeedOfLightMks / 1e3 // km / s
	GMks            = 6.67430e-11           // m^3 / (kg s^2)
	MSunMks         = 1.98841e30            // kg

	AUMks   = 1.495978707e11
	PcMks   = 3.0856775814913673e16
	MpcMks  = PcMks * 1e6
	YearMks = 365.25 * 86400 // Julian year
	GyrMks  = YearMks * 1e9
	LyMks   = SpeedOfLightMks * YearMks

	// SpeedOfLight is c in the package's base units, Mpc / Gyr.
	SpeedOfLight = SpeedOfLightMks * GyrMks / MpcMks

	// HubbleTime100 is 1 / (100 km/s/Mpc) in Gyr. Divide by h to get the
	// Hubble time of a cosmology.
	HubbleTime100 = (MpcMks / 1e3) / 100 / GyrMks
	// HubbleDistance100 is c / (100 km/s/Mpc) in Mpc.
	HubbleDistance100 = SpeedOfLightKms / 100
)
