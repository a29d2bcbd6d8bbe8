package catalog

import "github.com/wemarz/cinelux/internal/scene"

var categories = []Category{
	{ID: AllID, Name: Name{EN: "All Movies", MY: "ရုပ်ရှင်အားလုံး"}, Position: scene.Vec3{X: 0, Y: 0, Z: 0}, Color: "#ffffff", Scale: 2.5},
	{ID: "scifi", Name: Name{EN: "Sci-Fi", MY: "Sci-Fi"}, Position: scene.Vec3{X: 0, Y: 20, Z: -50}, Color: "#8b5cf6", Scale: 1.8},
	{ID: "horror", Name: Name{EN: "Horror", MY: "သရဲ"}, Position: scene.Vec3{X: -40, Y: -15, Z: -90}, Color: "#4a044e", Scale: 1.6},
	{ID: "action", Name: Name{EN: "Action", MY: "အက်ရှင်"}, Position: scene.Vec3{X: 60, Y: 0, Z: -100}, Color: "#facc15", Scale: 2.0},
	{ID: "drama", Name: Name{EN: "Drama", MY: "ဒရာမာ"}, Position: scene.Vec3{X: 30, Y: -25, Z: -40}, Color: "#0ea5e9", Scale: 1.7},
	{ID: "comedy", Name: Name{EN: "Comedy", MY: "ဟာသ"}, Position: scene.Vec3{X: -20, Y: 25, Z: -60}, Color: "#ec4899", Scale: 1.5},
	{ID: "mystery", Name: Name{EN: "Mystery", MY: "လျှို့ဝှက်ဆန်းကြယ်"}, Position: scene.Vec3{X: 10, Y: -20, Z: -70}, Color: "#22c55e", Scale: 1.6},
}

var movies = map[string][]Movie{
	"scifi": {
		{
			Title:     "Dune: Part Two",
			Poster:    "https://image.tmdb.org/t/p/w500/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
			Year:      2024,
			Rating:    "8.3",
			Synopsis:  "Paul Atrides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
			TrailerID: "U2Qp5pL3ovA",
		},
		{
			Title:     "Blade Runner 2049",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/9/9b/Blade_Runner_2049_poster.png",
			Year:      2017,
			Rating:    "7.9",
			Synopsis:  "Young Blade Runner K's discovery of a long-buried secret leads him to track down former Blade Runner Rick Deckard, who's been missing for 30 years.",
			TrailerID: "gCcx85zbxz4",
		},
		{
			Title:     "Arrival",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/d/df/Arrival%2C_Movie_Poster.jpg",
			Year:      2016,
			Rating:    "7.9",
			Synopsis:  "A linguist works with the military to communicate with alien lifeforms after twelve mysterious spacecraft appear around the world.",
			TrailerID: "tFMo3UJ4B4g",
		},
	},
	"horror": {
		{
			Title:     "Hereditary",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/d/d9/Hereditary.png",
			Year:      2018,
			Rating:    "7.2",
			Synopsis:  "A grieving family is haunted by tragic and disturbing occurrences after the death of their secretive grandmother.",
			TrailerID: "V6wWKNij_1M",
		},
		{
			Title:     "A Quiet Place",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/a/a0/A_Quiet_Place_film_poster.png",
			Year:      2018,
			Rating:    "7.5",
			Synopsis:  "In a post-apocalyptic world, a family is forced to live in silence while hiding from monsters with ultra-sensitive hearing.",
			TrailerID: "WR7cc5t7tv8",
		},
	},
	"action": {
		{
			Title:     "John Wick: Chapter 4",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/d/d0/John_Wick_-_Chapter_4_promotional_poster.jpg",
			Year:      2023,
			Rating:    "7.8",
			Synopsis:  "John Wick uncovers a path to defeating The High Table. But before he can earn his freedom, Wick must face off against a new enemy with powerful alliances across the globe.",
			TrailerID: "qEVUtrk8_B4",
		},
		{
			Title:     "Mad Max: Fury Road",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/6/6e/Mad_Max_Fury_Road.jpg",
			Year:      2015,
			Rating:    "8.1",
			Synopsis:  "In a post-apocalyptic wasteland, a woman rebels against a tyrannical ruler in search for her homeland with the help of a group of female prisoners, a psychotic worshiper, and a drifter named Max.",
			TrailerID: "hEJnMQG9ev8",
		},
	},
	"drama": {
		{
			Title:     "Parasite",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/5/53/Parasite_%282019_film%29.png",
			Year:      2019,
			Rating:    "8.6",
			Synopsis:  "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
			TrailerID: "5xH0HfJHsaY",
		},
		{
			Title:     "Oppenheimer",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/4/4a/Oppenheimer_%28film%29.jpg",
			Year:      2023,
			Rating:    "8.6",
			Synopsis:  "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
			TrailerID: "uYPbbksJxIg",
		},
	},
	"comedy": {
		{
			Title:     "Superbad",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/8/8b/Superbad_Poster.png",
			Year:      2007,
			Rating:    "7.6",
			Synopsis:  "Two co-dependent high school seniors are forced to deal with separation anxiety after their plan to stage a booze-soaked party goes awry.",
			TrailerID: "4v8KEbQA8kw",
		},
	},
	"mystery": {
		{
			Title:     "Knives Out",
			Poster:    "https://upload.wikimedia.org/wikipedia/en/1/1f/Knives_Out_poster.jpeg",
			Year:      2019,
			Rating:    "7.9",
			Synopsis:  "A detective investigates the death of a patriarch of an eccentric, combative family.",
			TrailerID: "qGqiHJTsRkQ",
		},
	},
}
