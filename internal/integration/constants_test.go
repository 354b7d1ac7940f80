package integration_test

const (
	// Admin related constants
	TestAdminUsername = "admin"
	TestAdminPassword = "Test123!@#"

	// Hall related constants
	TestHallName        = "Hall 1"
	TestHallRows        = 2
	TestHallSeatsPerRow = 2

	// TestHallLayout puts two VIP seats at 800 in the first row and two
	// standard seats at 500 in the second.
	TestHallLayout = `[["vip", "vip"], ["standard", "standard"]]`

	// Movie related constants
	TestMovieTitle    = "Test Movie"
	TestMovieSynopsis = "A test movie synopsis."
	TestMovieDuration = 120
	TestMovieOrigin   = "Turkey"

	// Screening related constants
	TestScreeningDate = "2025-12-01"
	TestScreeningTime = "18:00"
)
