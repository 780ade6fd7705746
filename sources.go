package main

import (
	// Import all source modules to trigger their init() functions
	_ "github.com/rihla/rihla/pkg/sources/blogs"
	_ "github.com/rihla/rihla/pkg/sources/hotels"
	_ "github.com/rihla/rihla/pkg/sources/offices"
	_ "github.com/rihla/rihla/pkg/sources/packages"
	_ "github.com/rihla/rihla/pkg/sources/tours"
	_ "github.com/rihla/rihla/pkg/sources/users"
	_ "github.com/rihla/rihla/pkg/sources/vouchers"
)
