package model

// DefaultSpots are hikeable nature spots within ~2.5h driving range of
// Menlo Park, CA. Many of them share a 0.5-degree forecast grid cell, which
// is what makes the scan cheap: 28 spots typically need ~10 live API calls.
var DefaultSpots = []Spot{
	{Name: "Marin Headlands", Latitude: 37.8270, Longitude: -122.4990, DriveMinutes: 50, Description: "Coastal bluffs with epic Pacific sunset views"},
	{Name: "Mt. Tamalpais", Latitude: 37.9235, Longitude: -122.5965, DriveMinutes: 55, Description: "2,571 ft peak above the fog, panoramic sunsets"},
	{Name: "Point Reyes", Latitude: 38.0682, Longitude: -122.8783, DriveMinutes: 80, Description: "Dramatic coastal cliffs & lighthouse"},
	{Name: "Muir Beach Overlook", Latitude: 37.8602, Longitude: -122.5722, DriveMinutes: 45, Description: "Classic coastal overlook facing due west"},
	{Name: "Lands End, SF", Latitude: 37.7878, Longitude: -122.5046, DriveMinutes: 40, Description: "Urban trail with Golden Gate sunset views"},
	{Name: "Twin Peaks, SF", Latitude: 37.7544, Longitude: -122.4477, DriveMinutes: 35, Description: "360-degree city & ocean panorama"},
	{Name: "Pacifica (Mori Point)", Latitude: 37.6180, Longitude: -122.4930, DriveMinutes: 25, Description: "Coastal headland, whale-watching & sunsets"},
	{Name: "Montara Mountain", Latitude: 37.5685, Longitude: -122.5035, DriveMinutes: 30, Description: "McNee Ranch summit, sweeping ocean views"},
	{Name: "Half Moon Bay", Latitude: 37.4636, Longitude: -122.4286, DriveMinutes: 25, Description: "Coastal bluff trails above the beach"},
	{Name: "Windy Hill", Latitude: 37.3715, Longitude: -122.2250, DriveMinutes: 15, Description: "Midpeninsula ridge with bay & ocean views"},
	{Name: "Russian Ridge", Latitude: 37.3230, Longitude: -122.2050, DriveMinutes: 20, Description: "Rolling grasslands on Skyline ridge"},
	{Name: "Skyline Ridge", Latitude: 37.3110, Longitude: -122.1830, DriveMinutes: 25, Description: "Alpine-feel ridge above Silicon Valley"},
	{Name: "Black Mountain", Latitude: 37.3210, Longitude: -122.1530, DriveMinutes: 20, Description: "Rancho San Antonio to summit panorama"},
	{Name: "Castle Rock State Park", Latitude: 37.2310, Longitude: -122.0945, DriveMinutes: 45, Description: "Sandstone formations in redwood forest"},
	{Name: "Big Basin Redwoods", Latitude: 37.1720, Longitude: -122.2190, DriveMinutes: 55, Description: "Old-growth redwoods near coast"},
	{Name: "Santa Cruz (West Cliff)", Latitude: 36.9505, Longitude: -122.0580, DriveMinutes: 60, Description: "Oceanfront path with wide sunset horizon"},
	{Name: "Ano Nuevo State Park", Latitude: 37.1085, Longitude: -122.3378, DriveMinutes: 45, Description: "Wild coastal bluffs, elephant seal habitat"},
	{Name: "Pinnacles National Park", Latitude: 36.4906, Longitude: -121.1825, DriveMinutes: 110, Description: "Volcanic spires, condors, dark sky sunsets"},
	{Name: "Point Lobos", Latitude: 36.5152, Longitude: -121.9420, DriveMinutes: 100, Description: "Crown jewel of CA coast, cypress & coves"},
	{Name: "Garrapata State Park", Latitude: 36.4638, Longitude: -121.9142, DriveMinutes: 105, Description: "Big Sur northern gateway, dramatic cliffs"},
	{Name: "Mt. Diablo", Latitude: 37.8816, Longitude: -121.9142, DriveMinutes: 55, Description: "East Bay summit with 360-degree views"},
	{Name: "Sunol Regional Wilderness", Latitude: 37.5130, Longitude: -121.8310, DriveMinutes: 35, Description: "Little Yosemite gorge, rolling hills"},
	{Name: "Mission Peak", Latitude: 37.5126, Longitude: -121.8806, DriveMinutes: 35, Description: "Iconic Bay Area summit hike"},
	{Name: "Mt. Hamilton / Lick Obs.", Latitude: 37.3414, Longitude: -121.6426, DriveMinutes: 60, Description: "High-altitude views above South Bay"},
	{Name: "Henry Coe State Park", Latitude: 37.1850, Longitude: -121.4470, DriveMinutes: 70, Description: "Rugged backcountry, sweeping valleys"},
	{Name: "Bodega Head", Latitude: 38.2990, Longitude: -123.0650, DriveMinutes: 110, Description: "Dramatic Sonoma Coast headland"},
	{Name: "Stinson Beach / Steep Ravine", Latitude: 37.8988, Longitude: -122.6370, DriveMinutes: 65, Description: "Beach & coastal canyon trails"},
	{Name: "Fremont Peak", Latitude: 36.7570, Longitude: -121.5000, DriveMinutes: 90, Description: "3,169 ft summit with Monterey Bay views"},
}
