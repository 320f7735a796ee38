package gazetteer

// cityEntry keys are lowercase; matching against post text is whole-word and
// case-insensitive, never fuzzy.
type cityEntry struct {
	lat     float64
	lng     float64
	country string
}

// The tables are sharded per region purely for maintainability; they are
// merged into one index at load time.
var cityRegions = []map[string]cityEntry{
	citiesEurope,
	citiesAsia,
	citiesAmericas,
	citiesAfricaOceania,
}

var citiesEurope = map[string]cityEntry{
	"london":     {51.5074, -0.1278, "GB"},
	"paris":      {48.8566, 2.3522, "FR"},
	"rome":       {41.9028, 12.4964, "IT"},
	"milan":      {45.4642, 9.1900, "IT"},
	"venice":     {45.4408, 12.3155, "IT"},
	"florence":   {43.7696, 11.2558, "IT"},
	"naples":     {40.8518, 14.2681, "IT"},
	"madrid":     {40.4168, -3.7038, "ES"},
	"barcelona":  {41.3874, 2.1686, "ES"},
	"seville":    {37.3891, -5.9845, "ES"},
	"lisbon":     {38.7223, -9.1393, "PT"},
	"porto":      {41.1579, -8.6291, "PT"},
	"berlin":     {52.5200, 13.4050, "DE"},
	"munich":     {48.1351, 11.5820, "DE"},
	"hamburg":    {53.5511, 9.9937, "DE"},
	"amsterdam":  {52.3676, 4.9041, "NL"},
	"rotterdam":  {51.9244, 4.4777, "NL"},
	"brussels":   {50.8503, 4.3517, "BE"},
	"vienna":     {48.2082, 16.3738, "AT"},
	"salzburg":   {47.8095, 13.0550, "AT"},
	"zurich":     {47.3769, 8.5417, "CH"},
	"geneva":     {46.2044, 6.1432, "CH"},
	"interlaken": {46.6863, 7.8632, "CH"},
	"prague":     {50.0755, 14.4378, "CZ"},
	"budapest":   {47.4979, 19.0402, "HU"},
	"warsaw":     {52.2297, 21.0122, "PL"},
	"krakow":     {50.0647, 19.9450, "PL"},
	"copenhagen": {55.6761, 12.5683, "DK"},
	"stockholm":  {59.3293, 18.0686, "SE"},
	"oslo":       {59.9139, 10.7522, "NO"},
	"bergen":     {60.3913, 5.3221, "NO"},
	"helsinki":   {60.1699, 24.9384, "FI"},
	"reykjavik":  {64.1466, -21.9426, "IS"},
	"dublin":     {53.3498, -6.2603, "IE"},
	"edinburgh":  {55.9533, -3.1883, "GB"},
	"manchester": {53.4808, -2.2426, "GB"},
	"athens":     {37.9838, 23.7275, "GR"},
	"santorini":  {36.3932, 25.4615, "GR"},
	"mykonos":    {37.4467, 25.3289, "GR"},
	"crete":      {35.2401, 24.8093, "GR"},
	"istanbul":   {41.0082, 28.9784, "TR"},
	"antalya":    {36.8969, 30.7133, "TR"},
	"cappadocia": {38.6431, 34.8289, "TR"},
	"dubrovnik":  {42.6507, 18.0944, "HR"},
	"split":      {43.5081, 16.4402, "HR"},
	"zagreb":     {45.8150, 15.9819, "HR"},
	"tirana":     {41.3275, 19.8187, "AL"},
	"sarande":    {39.8756, 20.0053, "AL"},
	"ksamil":     {39.7686, 20.0031, "AL"},
	"vlore":      {40.4667, 19.4897, "AL"},
	"kotor":      {42.4247, 18.7712, "ME"},
	"budva":      {42.2864, 18.8400, "ME"},
	"belgrade":   {44.7866, 20.4489, "RS"},
	"bucharest":  {44.4268, 26.1025, "RO"},
	"sofia":      {42.6977, 23.3219, "BG"},
	"kyiv":       {50.4501, 30.5234, "UA"},
	"moscow":     {55.7558, 37.6173, "RU"},
	"nice":       {43.7102, 7.2620, "FR"},
	"lyon":       {45.7640, 4.8357, "FR"},
	"marseille":  {43.2965, 5.3698, "FR"},
	"ibiza":      {38.9067, 1.4206, "ES"},
	"mallorca":   {39.6953, 3.0176, "ES"},
	"tenerife":   {28.2916, -16.6291, "ES"},
	"valencia":   {39.4699, -0.3763, "ES"},
	"malta":      {35.9375, 14.3754, "MT"},
}

var citiesAsia = map[string]cityEntry{
	"tokyo":        {35.6762, 139.6503, "JP"},
	"kyoto":        {35.0116, 135.7681, "JP"},
	"osaka":        {34.6937, 135.5023, "JP"},
	"seoul":        {37.5665, 126.9780, "KR"},
	"busan":        {35.1796, 129.0756, "KR"},
	"beijing":      {39.9042, 116.4074, "CN"},
	"shanghai":     {31.2304, 121.4737, "CN"},
	"hong kong":    {22.3193, 114.1694, "HK"},
	"taipei":       {25.0330, 121.5654, "TW"},
	"bangkok":      {13.7563, 100.5018, "TH"},
	"chiang mai":   {18.7883, 98.9853, "TH"},
	"phuket":       {7.8804, 98.3923, "TH"},
	"krabi":        {8.0863, 98.9063, "TH"},
	"koh samui":    {9.5120, 100.0136, "TH"},
	"hanoi":        {21.0285, 105.8542, "VN"},
	"ho chi minh":  {10.8231, 106.6297, "VN"},
	"da nang":      {16.0545, 108.0717, "VN"},
	"hoi an":       {15.8801, 108.3380, "VN"},
	"singapore":    {1.3521, 103.8198, "SG"},
	"kuala lumpur": {3.1390, 101.6869, "MY"},
	"penang":       {5.4164, 100.3327, "MY"},
	"jakarta":      {-6.2088, 106.8456, "ID"},
	"bali":         {-8.4095, 115.1889, "ID"},
	"ubud":         {-8.5069, 115.2625, "ID"},
	"canggu":       {-8.6478, 115.1385, "ID"},
	"uluwatu":      {-8.8291, 115.0849, "ID"},
	"lombok":       {-8.6500, 116.3249, "ID"},
	"manila":       {14.5995, 120.9842, "PH"},
	"cebu":         {10.3157, 123.8854, "PH"},
	"palawan":      {9.8349, 118.7384, "PH"},
	"siargao":      {9.8482, 126.0458, "PH"},
	"mumbai":       {19.0760, 72.8777, "IN"},
	"delhi":        {28.7041, 77.1025, "IN"},
	"goa":          {15.2993, 74.1240, "IN"},
	"jaipur":       {26.9124, 75.7873, "IN"},
	"kathmandu":    {27.7172, 85.3240, "NP"},
	"colombo":      {6.9271, 79.8612, "LK"},
	"male":         {4.1755, 73.5093, "MV"},
	"dubai":        {25.2048, 55.2708, "AE"},
	"abu dhabi":    {24.4539, 54.3773, "AE"},
	"doha":         {25.2854, 51.5310, "QA"},
	"riyadh":       {24.7136, 46.6753, "SA"},
	"tel aviv":     {32.0853, 34.7818, "IL"},
	"jerusalem":    {31.7683, 35.2137, "IL"},
	"amman":        {31.9454, 35.9284, "JO"},
	"petra":        {30.3285, 35.4444, "JO"},
	"beirut":       {33.8938, 35.5018, "LB"},
	"tbilisi":      {41.7151, 44.8271, "GE"},
	"yerevan":      {40.1792, 44.4991, "AM"},
	"baku":         {40.4093, 49.8671, "AZ"},
	"almaty":       {43.2220, 76.8512, "KZ"},
	"bishkek":      {42.8746, 74.5698, "KG"},
	"tashkent":     {41.2995, 69.2401, "UZ"},
	"samarkand":    {39.6270, 66.9750, "UZ"},
}

var citiesAmericas = map[string]cityEntry{
	"new york":       {40.7128, -74.0060, "US"},
	"los angeles":    {34.0522, -118.2437, "US"},
	"san francisco":  {37.7749, -122.4194, "US"},
	"miami":          {25.7617, -80.1918, "US"},
	"chicago":        {41.8781, -87.6298, "US"},
	"las vegas":      {36.1699, -115.1398, "US"},
	"seattle":        {47.6062, -122.3321, "US"},
	"austin":         {30.2672, -97.7431, "US"},
	"new orleans":    {29.9511, -90.0715, "US"},
	"honolulu":       {21.3099, -157.8581, "US"},
	"maui":           {20.7984, -156.3319, "US"},
	"toronto":        {43.6532, -79.3832, "CA"},
	"vancouver":      {49.2827, -123.1207, "CA"},
	"montreal":       {45.5017, -73.5673, "CA"},
	"banff":          {51.1784, -115.5708, "CA"},
	"mexico city":    {19.4326, -99.1332, "MX"},
	"cancun":         {21.1619, -86.8515, "MX"},
	"tulum":          {20.2114, -87.4654, "MX"},
	"oaxaca":         {17.0732, -96.7266, "MX"},
	"havana":         {23.1136, -82.3666, "CU"},
	"san juan":       {18.4655, -66.1057, "PR"},
	"panama city":    {8.9824, -79.5199, "PA"},
	"bogota":         {4.7110, -74.0721, "CO"},
	"medellin":       {6.2476, -75.5658, "CO"},
	"cartagena":      {10.3910, -75.4794, "CO"},
	"lima":           {-12.0464, -77.0428, "PE"},
	"cusco":          {-13.5320, -71.9675, "PE"},
	"quito":          {-0.1807, -78.4678, "EC"},
	"galapagos":      {-0.9538, -90.9656, "EC"},
	"la paz":         {-16.4897, -68.1193, "BO"},
	"santiago":       {-33.4489, -70.6693, "CL"},
	"patagonia":      {-41.8102, -68.9063, "AR"},
	"buenos aires":   {-34.6037, -58.3816, "AR"},
	"mendoza":        {-32.8895, -68.8458, "AR"},
	"rio de janeiro": {-22.9068, -43.1729, "BR"},
	"sao paulo":      {-23.5505, -46.6333, "BR"},
	"florianopolis":  {-27.5954, -48.5480, "BR"},
	"montevideo":     {-34.9011, -56.1645, "UY"},
}

var citiesAfricaOceania = map[string]cityEntry{
	"cairo":          {30.0444, 31.2357, "EG"},
	"luxor":          {25.6872, 32.6396, "EG"},
	"marrakech":      {31.6295, -7.9811, "MA"},
	"casablanca":     {33.5731, -7.5898, "MA"},
	"fes":            {34.0181, -5.0078, "MA"},
	"tunis":          {36.8065, 10.1815, "TN"},
	"cape town":      {-33.9249, 18.4241, "ZA"},
	"johannesburg":   {-26.2041, 28.0473, "ZA"},
	"nairobi":        {-1.2921, 36.8219, "KE"},
	"zanzibar":       {-6.1659, 39.2026, "TZ"},
	"addis ababa":    {9.0250, 38.7469, "ET"},
	"accra":          {5.6037, -0.1870, "GH"},
	"lagos":          {6.5244, 3.3792, "NG"},
	"dakar":          {14.7167, -17.4677, "SN"},
	"victoria falls": {-17.9243, 25.8572, "ZW"},
	"sydney":         {-33.8688, 151.2093, "AU"},
	"melbourne":      {-37.8136, 144.9631, "AU"},
	"brisbane":       {-27.4698, 153.0251, "AU"},
	"perth":          {-31.9505, 115.8605, "AU"},
	"cairns":         {-16.9186, 145.7781, "AU"},
	"auckland":       {-36.8485, 174.7633, "NZ"},
	"queenstown":     {-45.0312, 168.6626, "NZ"},
	"wellington":     {-41.2866, 174.7756, "NZ"},
	"fiji":           {-17.7134, 178.0650, "FJ"},
	"bora bora":      {-16.5004, -151.7415, "PF"},
}
