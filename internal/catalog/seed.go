package catalog

import "github.com/shopspring/decimal"

// Seed returns the bundled static catalog. It renders the storefront on first
// paint and is the fallback when the remote source is unreachable.
func Seed() ([]Product, []Store) {
	return seedProducts(), seedStores()
}

func seedProducts() []Product {
	return []Product{
		seedProduct("1", "Fresh Calamansi (1kg)",
			"Sweet and tangy calamansi, freshly picked from local Mindoro farms. Perfect for juices and marinades.",
			80, "calamansi fruit", "Fresh Produce", "Mindoro Harvest", true, false),
		seedProduct("2", "Organic Rambutan (1kg)",
			"Juicy and sweet rambutan, grown without pesticides. A local favorite seasonal fruit.",
			120, "rambutan fruit", "Fresh Produce", "Naujan Farms", false, false),
		seedProduct("3", "Wild Honey (500ml)",
			"Pure, raw honey harvested from the forests of Mount Halcon. Rich in flavor and nutrients.",
			350, "honey jar", "Local Delicacies", "Mangyan Treasures", false, true),
		seedProduct("4", "Handwoven Nito Basket",
			"A beautifully crafted basket made from native Nito vines by local artisans.",
			550, "woven basket", "Handicrafts", "Mangyan Treasures", false, false),
		seedProduct("5", "Dried Fish (Tuyo)",
			"Salty and savory dried fish, a staple in Filipino breakfast. Sourced from the coastal towns of Mindoro.",
			150, "dried fish", "Local Delicacies", "Mindoro Harvest", true, true),
		seedProduct("6", "Banana Chips (250g)",
			"Crispy and sweet banana chips made from Mindoro saba bananas. A perfect snack.",
			100, "banana chips", "Local Delicacies", "Naujan Farms", false, false),
		seedProduct("7", "Mindoro Cashew Nuts (500g)",
			"Roasted cashew nuts from the hills of Mindoro. A healthy and delicious treat.",
			400, "cashew nuts", "Local Delicacies", "Mindoro Harvest", false, false),
		seedProduct("8", "Tablea Cacao Balls",
			"Pure, unsweetened cacao balls for making rich, traditional hot chocolate.",
			200, "cacao balls", "Local Delicacies", "Naujan Farms", false, false),
		seedProduct("9", "Buri Palm Bag",
			"A stylish and durable shoulder bag handwoven from Buri palm leaves.",
			450, "palm bag", "Handicrafts", "Mangyan Treasures", false, false),
		seedProduct("10", "Fresh Mangoes (1kg)",
			"Sweet, golden mangoes, the pride of the Philippines, from sunny Mindoro fields.",
			180, "mango fruit", "Fresh Produce", "Mindoro Harvest", false, false),
		seedProduct("11", "Coconut Vinegar (750ml)",
			"Organic, fermented coconut vinegar. Adds a sharp, delicious tang to any dish.",
			90, "vinegar bottle", "Pantry Staples", "Naujan Farms", false, false),
		seedProduct("12", "Lanzones (1kg)",
			"Sweet and succulent Lanzones, a seasonal delight from local orchards.",
			150, "lanzones fruit", "Fresh Produce", "Mindoro Harvest", false, false),
		seedProduct("13", "Suman sa Lihia",
			"A local delicacy of steamed glutinous rice wrapped in banana leaves.",
			120, "rice cake", "Local Delicacies", "Calapan Sweets", false, false),
		seedProduct("14", "Barako Coffee Beans (250g)",
			"Strong, aromatic Barako coffee beans, grown in the highlands of Mindoro.",
			250, "coffee beans", "Pantry Staples", "Mindoro Harvest", false, false),
		seedProduct("15", "Homemade Ube Jam (250g)",
			"Rich and creamy purple yam jam, a classic Filipino dessert spread.",
			180, "ube jam", "Local Delicacies", "Calapan Sweets", false, false),
		seedProduct("16", "Sweet Tamarind Candy",
			"A sweet and sour treat made from local tamarind pulp.",
			70, "tamarind candy", "Local Delicacies", "Naujan Farms", true, false),
		seedProduct("17", "Hand-painted Bayong Bag",
			"A traditional Filipino woven bag, hand-painted with unique local designs.",
			600, "painted bag", "Handicrafts", "Mangyan Treasures", false, false),
	}
}

func seedProduct(id, name, description string, price int64, hint, category, brand string, onSale, lowStock bool) Product {
	return Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.NewFromInt(price),
		Image: Image{
			Src:  placeholderProductImage,
			Hint: hint,
		},
		Category:   category,
		Brand:      brand,
		OnSale:     onSale,
		LowStock:   lowStock,
		Active:     true,
		Popularity: defaultPopularity,
	}
}

func seedStores() []Store {
	return []Store{
		seedStore("1", "Calapan Agri-Hub", "Central Market, Calapan City", "market stalls"),
		seedStore("2", "Puerto Galera's Finest", "White Beach, Puerto Galera", "beachside shop"),
		seedStore("3", "Naujan Organics", "Naujan Public Market", "organic produce"),
		seedStore("4", "Mangyan Heritage Crafts", "Brgy. Panaytayan, Mansalay", "craft workshop"),
	}
}

func seedStore(id, name, address, hint string) Store {
	return Store{
		ID:      id,
		Name:    name,
		Address: address,
		Image: Image{
			Src:  placeholderStoreImage,
			Hint: hint,
		},
		Lat:    defaultLatitude,
		Lng:    defaultLongitude,
		Genres: []GenreBadge{},
		Photos: []Image{},
	}
}
