// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

// defaultProducts is the catalog served when no catalog file is configured.
var defaultProducts = []Product{
	// Electronics
	{ID: 1, Name: "Sony WH-1000XM5", Category: "Electronics", Price: 399, Rating: 4.8, Reviews: 12400, Tags: []string{"headphones", "wireless", "sony"}},
	{ID: 2, Name: "Apple AirPods Pro", Category: "Electronics", Price: 249, Rating: 4.7, Reviews: 89300, Tags: []string{"earbuds", "apple"}},
	{ID: 3, Name: "JBL Flip 6", Category: "Electronics", Price: 129, Rating: 4.6, Reviews: 21000, Tags: []string{"speaker", "bluetooth"}},

	// Computers
	{ID: 4, Name: "MacBook Pro M3", Category: "Computers", Price: 1999, Rating: 4.9, Reviews: 5600, Tags: []string{"laptop", "apple"}},
	{ID: 5, Name: "Dell XPS 15", Category: "Computers", Price: 1699, Rating: 4.6, Reviews: 3400, Tags: []string{"laptop", "windows"}},

	// TVs
	{ID: 6, Name: "Samsung 55 4K OLED", Category: "TVs", Price: 1299, Rating: 4.7, Reviews: 8200, Tags: []string{"tv", "4k", "oled"}},
	{ID: 7, Name: "LG C3 OLED 65", Category: "TVs", Price: 1799, Rating: 4.8, Reviews: 6700, Tags: []string{"tv", "gaming"}},

	// Phones
	{ID: 8, Name: "iPhone 15 Pro", Category: "Phones", Price: 999, Rating: 4.8, Reviews: 45600, Tags: []string{"apple", "smartphone"}},
	{ID: 9, Name: "Samsung Galaxy S24", Category: "Phones", Price: 899, Rating: 4.7, Reviews: 32100, Tags: []string{"android"}},

	// Tablets
	{ID: 10, Name: "iPad Pro M2", Category: "Tablets", Price: 1099, Rating: 4.8, Reviews: 9800, Tags: []string{"tablet", "apple"}},
	{ID: 11, Name: "Samsung Galaxy Tab S9", Category: "Tablets", Price: 799, Rating: 4.6, Reviews: 5400, Tags: []string{"tablet", "android"}},

	// Cameras
	{ID: 12, Name: "Sony A7 IV", Category: "Cameras", Price: 2499, Rating: 4.9, Reviews: 3300, Tags: []string{"camera", "mirrorless"}},
	{ID: 13, Name: "Canon EOS R6", Category: "Cameras", Price: 2199, Rating: 4.8, Reviews: 2900, Tags: []string{"camera", "dslr"}},

	// Gaming
	{ID: 14, Name: "PlayStation 5", Category: "Gaming", Price: 499, Rating: 4.8, Reviews: 31200, Tags: []string{"console"}},
	{ID: 15, Name: "Xbox Series X", Category: "Gaming", Price: 499, Rating: 4.7, Reviews: 28600, Tags: []string{"console"}},

	// Home
	{ID: 16, Name: "Dyson V15 Detect", Category: "Home", Price: 749, Rating: 4.6, Reviews: 12100, Tags: []string{"vacuum"}},
	{ID: 17, Name: "Instant Pot Pro", Category: "Home", Price: 149, Rating: 4.7, Reviews: 54300, Tags: []string{"kitchen"}},

	// Smart Home
	{ID: 18, Name: "Amazon Echo Dot", Category: "Smart Home", Price: 49, Rating: 4.5, Reviews: 89000, Tags: []string{"alexa"}},
	{ID: 19, Name: "Google Nest Hub", Category: "Smart Home", Price: 99, Rating: 4.6, Reviews: 21000, Tags: []string{"google"}},
}

// Default returns a fresh copy of the built-in catalog.
func Default() []Product {
	out := make([]Product, len(defaultProducts))
	for i := range defaultProducts {
		out[i] = defaultProducts[i].Clone()
	}
	return out
}
