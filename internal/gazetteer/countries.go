package gazetteer

// countryEntry coordinates are rough centroids, only used to widen a
// geocoding bias circle around the country; precision is not the point.
type countryEntry struct {
	code string
	lat  float64
	lng  float64
}

var countryTable = map[string]countryEntry{
	"albania":              {"AL", 41.1533, 20.1683},
	"argentina":            {"AR", -38.4161, -63.6167},
	"australia":            {"AU", -25.2744, 133.7751},
	"austria":              {"AT", 47.5162, 14.5501},
	"bolivia":              {"BO", -16.2902, -63.5887},
	"brazil":               {"BR", -14.2350, -51.9253},
	"bulgaria":             {"BG", 42.7339, 25.4858},
	"cambodia":             {"KH", 12.5657, 104.9910},
	"canada":               {"CA", 56.1304, -106.3468},
	"chile":                {"CL", -35.6751, -71.5430},
	"china":                {"CN", 35.8617, 104.1954},
	"colombia":             {"CO", 4.5709, -74.2973},
	"costa rica":           {"CR", 9.7489, -83.7534},
	"croatia":              {"HR", 45.1000, 15.2000},
	"cuba":                 {"CU", 21.5218, -77.7812},
	"czech republic":       {"CZ", 49.8175, 15.4730},
	"denmark":              {"DK", 56.2639, 9.5018},
	"ecuador":              {"EC", -1.8312, -78.1834},
	"egypt":                {"EG", 26.8206, 30.8025},
	"estonia":              {"EE", 58.5953, 25.0136},
	"ethiopia":             {"ET", 9.1450, 40.4897},
	"finland":              {"FI", 61.9241, 25.7482},
	"france":               {"FR", 46.2276, 2.2137},
	"georgia":              {"GE", 42.3154, 43.3569},
	"germany":              {"DE", 51.1657, 10.4515},
	"ghana":                {"GH", 7.9465, -1.0232},
	"greece":               {"GR", 39.0742, 21.8243},
	"hungary":              {"HU", 47.1625, 19.5033},
	"iceland":              {"IS", 64.9631, -19.0208},
	"india":                {"IN", 20.5937, 78.9629},
	"indonesia":            {"ID", -0.7893, 113.9213},
	"ireland":              {"IE", 53.1424, -7.6921},
	"israel":               {"IL", 31.0461, 34.8516},
	"italy":                {"IT", 41.8719, 12.5674},
	"japan":                {"JP", 36.2048, 138.2529},
	"jordan":               {"JO", 30.5852, 36.2384},
	"kazakhstan":           {"KZ", 48.0196, 66.9237},
	"kenya":                {"KE", -0.0236, 37.9062},
	"kyrgyzstan":           {"KG", 41.2044, 74.7661},
	"laos":                 {"LA", 19.8563, 102.4955},
	"lebanon":              {"LB", 33.8547, 35.8623},
	"malaysia":             {"MY", 4.2105, 101.9758},
	"maldives":             {"MV", 3.2028, 73.2207},
	"mexico":               {"MX", 23.6345, -102.5528},
	"mongolia":             {"MN", 46.8625, 103.8467},
	"montenegro":           {"ME", 42.7087, 19.3744},
	"morocco":              {"MA", 31.7917, -7.0926},
	"myanmar":              {"MM", 21.9162, 95.9560},
	"nepal":                {"NP", 28.3949, 84.1240},
	"netherlands":          {"NL", 52.1326, 5.2913},
	"new zealand":          {"NZ", -40.9006, 174.8860},
	"nigeria":              {"NG", 9.0820, 8.6753},
	"norway":               {"NO", 60.4720, 8.4689},
	"oman":                 {"OM", 21.4735, 55.9754},
	"panama":               {"PA", 8.5380, -80.7821},
	"peru":                 {"PE", -9.1900, -75.0152},
	"philippines":          {"PH", 12.8797, 121.7740},
	"poland":               {"PL", 51.9194, 19.1451},
	"portugal":             {"PT", 39.3999, -8.2245},
	"qatar":                {"QA", 25.3548, 51.1839},
	"romania":              {"RO", 45.9432, 24.9668},
	"serbia":               {"RS", 44.0165, 21.0059},
	"singapore":            {"SG", 1.3521, 103.8198},
	"slovenia":             {"SI", 46.1512, 14.9955},
	"south africa":         {"ZA", -30.5595, 22.9375},
	"south korea":          {"KR", 35.9078, 127.7669},
	"spain":                {"ES", 40.4637, -3.7492},
	"sri lanka":            {"LK", 7.8731, 80.7718},
	"sweden":               {"SE", 60.1282, 18.6435},
	"switzerland":          {"CH", 46.8182, 8.2275},
	"tanzania":             {"TZ", -6.3690, 34.8888},
	"thailand":             {"TH", 15.8700, 100.9925},
	"tunisia":              {"TN", 33.8869, 9.5375},
	"turkey":               {"TR", 38.9637, 35.2433},
	"ukraine":              {"UA", 48.3794, 31.1656},
	"united arab emirates": {"AE", 23.4241, 53.8478},
	"united kingdom":       {"GB", 55.3781, -3.4360},
	"united states":        {"US", 37.0902, -95.7129},
	"uruguay":              {"UY", -32.5228, -55.7658},
	"uzbekistan":           {"UZ", 41.3775, 64.5853},
	"vietnam":              {"VN", 14.0583, 108.2772},
	"zimbabwe":             {"ZW", -19.0154, 29.1549},
}

// Common shorthand people actually type in captions and hashtags.
var countryAliases = map[string]string{
	"uk":          "united kingdom",
	"england":     "united kingdom",
	"scotland":    "united kingdom",
	"usa":         "united states",
	"america":     "united states",
	"uae":         "united arab emirates",
	"holland":     "netherlands",
	"czechia":     "czech republic",
	"burma":       "myanmar",
	"korea":       "south korea",
	"turkiye":     "turkey",
}
