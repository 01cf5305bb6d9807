package catalog

// The static catalog. Defined once, never mutated at runtime.

var categories = []Category{
	{
		ID:          "graphics-cards",
		Name:        "Graphics Cards",
		Description: "High-performance GPUs for gaming and professional work",
		Icon:        "Zap",
		Count:       15,
	},
	{
		ID:          "processors",
		Name:        "Processors",
		Description: "Latest CPU technology from Intel and AMD",
		Icon:        "Cpu",
		Count:       12,
	},
	{
		ID:          "motherboards",
		Name:        "Motherboards",
		Description: "Premium motherboards for all socket types",
		Icon:        "CircuitBoard",
		Count:       18,
	},
	{
		ID:          "ram",
		Name:        "Memory (RAM)",
		Description: "DDR4 and DDR5 memory modules",
		Icon:        "MemoryStick",
		Count:       14,
	},
	{
		ID:          "storage",
		Name:        "Storage",
		Description: "SSDs, HDDs, and NVMe drives",
		Icon:        "HardDrive",
		Count:       16,
	},
	{
		ID:          "cooling",
		Name:        "Cooling",
		Description: "Air and liquid cooling solutions",
		Icon:        "Fan",
		Count:       10,
	},
	{
		ID:          "monitors",
		Name:        "Monitors",
		Description: "4K, ultrawide, and gaming displays",
		Icon:        "Monitor",
		Count:       12,
	},
	{
		ID:          "peripherals",
		Name:        "Peripherals",
		Description: "Gaming keyboards, mice, and accessories",
		Icon:        "Gamepad2",
		Count:       20,
	},
}

var products = []Product{
	// Graphics Cards
	{
		ID:            "rtx-4090-gaming-x",
		Name:          "NVIDIA GeForce RTX 4090 Gaming X Trio 24GB",
		Category:      "graphics-cards",
		Price:         1599.99,
		OriginalPrice: 1799.99,
		Description:   "The ultimate gaming graphics card with 24GB GDDR6X memory, featuring advanced ray tracing and DLSS 3.0 technology for unparalleled 4K gaming performance.",
		Image:         "https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"GPU":               "NVIDIA GeForce RTX 4090",
			"Memory":            "24GB GDDR6X",
			"Memory Interface":  "384-bit",
			"Base Clock":        "2230 MHz",
			"Boost Clock":       "2520 MHz",
			"CUDA Cores":        "16384",
			"Ray Tracing Cores": "128 (3rd gen)",
			"Tensor Cores":      "512 (4th gen)",
			"Power Consumption": "450W",
			"Recommended PSU":   "850W",
			"Outputs":           "3x DisplayPort 1.4a, 1x HDMI 2.1",
			"DirectX Support":   "DirectX 12 Ultimate",
			"Dimensions":        "336 x 140 x 61 mm",
		},
		Rating:   4.8,
		Reviews:  342,
		InStock:  true,
		Features: []string{"Ray Tracing", "DLSS 3.0", "4K Gaming", "RGB Lighting"},
		Brand:    "MSI",
		Tags:     []string{"gaming", "high-end", "ray-tracing", "4k"},
	},
	{
		ID:            "rtx-4080-super",
		Name:          "NVIDIA GeForce RTX 4080 SUPER 16GB",
		Category:      "graphics-cards",
		Price:         999.99,
		OriginalPrice: 1199.99,
		Description:   "High-performance graphics card perfect for 1440p and 4K gaming with 16GB GDDR6X memory and advanced cooling technology.",
		Image:         "https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"GPU":               "NVIDIA GeForce RTX 4080 SUPER",
			"Memory":            "16GB GDDR6X",
			"Memory Interface":  "256-bit",
			"Base Clock":        "2295 MHz",
			"Boost Clock":       "2550 MHz",
			"CUDA Cores":        "10240",
			"Ray Tracing Cores": "80 (3rd gen)",
			"Tensor Cores":      "320 (4th gen)",
			"Power Consumption": "320W",
			"Recommended PSU":   "750W",
			"Outputs":           "3x DisplayPort 1.4a, 1x HDMI 2.1",
			"DirectX Support":   "DirectX 12 Ultimate",
		},
		Rating:   4.7,
		Reviews:  256,
		InStock:  true,
		Features: []string{"Ray Tracing", "DLSS 3.0", "1440p Gaming", "Efficient Cooling"},
		Brand:    "ASUS",
		Tags:     []string{"gaming", "performance", "ray-tracing"},
	},

	// Processors
	{
		ID:          "intel-i9-14900k",
		Name:        "Intel Core i9-14900K Desktop Processor",
		Category:    "processors",
		Price:       589.99,
		Description: "Latest 14th generation Intel processor with 24 cores (8P+16E) and 32 threads, perfect for gaming and content creation.",
		Image:       "https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Cores":           "24 (8P+16E)",
			"Threads":         "32",
			"Base Clock":      "3.2 GHz",
			"Max Turbo":       "6.0 GHz",
			"Cache":           "36MB Intel Smart Cache",
			"Socket":          "LGA1700",
			"Process":         "Intel 7 (10nm)",
			"TDP":             "125W",
			"Max Turbo Power": "253W",
			"Memory Support":  "DDR4-3200, DDR5-5600",
			"PCIe Lanes":      "20 (PCIe 5.0 & 4.0)",
			"Graphics":        "Intel UHD Graphics 770",
		},
		Rating:   4.6,
		Reviews:  189,
		InStock:  true,
		Features: []string{"24 Cores", "DDR5 Support", "PCIe 5.0", "Overclockable"},
		Brand:    "Intel",
		Tags:     []string{"high-end", "gaming", "content-creation", "overclocking"},
	},
	{
		ID:            "amd-ryzen-9-7950x",
		Name:          "AMD Ryzen 9 7950X Desktop Processor",
		Category:      "processors",
		Price:         549.99,
		OriginalPrice: 699.99,
		Description:   "Flagship AMD processor with 16 cores and 32 threads, built on advanced 5nm technology for exceptional performance.",
		Image:         "https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Cores":          "16",
			"Threads":        "32",
			"Base Clock":     "4.5 GHz",
			"Max Boost":      "5.7 GHz",
			"Cache":          "80MB (64MB L3 + 16MB L2)",
			"Socket":         "AM5",
			"Process":        "TSMC 5nm",
			"TDP":            "170W",
			"Memory Support": "DDR5-5200",
			"PCIe Lanes":     "28 (PCIe 5.0)",
			"Graphics":       "AMD Radeon Graphics",
		},
		Rating:   4.8,
		Reviews:  234,
		InStock:  true,
		Features: []string{"16 Cores", "5nm Process", "DDR5", "PCIe 5.0"},
		Brand:    "AMD",
		Tags:     []string{"high-end", "gaming", "workstation", "content-creation"},
	},

	// Motherboards
	{
		ID:          "asus-rog-maximus-z790",
		Name:        "ASUS ROG Maximus Z790 Hero WiFi 7",
		Category:    "motherboards",
		Price:       629.99,
		Description: "Premium Z790 motherboard with WiFi 7, DDR5 support, and advanced overclocking features for enthusiast builds.",
		Image:       "https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Socket":          "LGA1700",
			"Chipset":         "Intel Z790",
			"Memory":          "DDR5-7800+ (OC), 4x DIMM, Max 128GB",
			"Expansion Slots": "2x PCIe 5.0 x16, 1x PCIe 4.0 x16",
			"Storage":         "4x M.2 (PCIe 5.0/4.0), 6x SATA 6Gb/s",
			"USB Ports":       "2x USB 3.2 Gen 2x2, 6x USB 3.2 Gen 2",
			"Network":         "Intel 2.5Gb Ethernet, WiFi 7",
			"Audio":           "SupremeFX 7.1 Surround",
			"Form Factor":     "ATX",
			"RGB":             "Aura Sync RGB",
		},
		Rating:   4.7,
		Reviews:  156,
		InStock:  true,
		Features: []string{"WiFi 7", "DDR5-7800+", "PCIe 5.0", "RGB Lighting"},
		Brand:    "ASUS",
		Tags:     []string{"gaming", "overclocking", "premium", "rgb"},
	},

	// Memory (RAM)
	{
		ID:            "corsair-dominator-ddr5-32gb",
		Name:          "Corsair Dominator Platinum RGB 32GB DDR5-6000",
		Category:      "ram",
		Price:         299.99,
		OriginalPrice: 349.99,
		Description:   "Premium DDR5 memory kit with RGB lighting and exceptional performance for high-end gaming and workstation builds.",
		Image:         "https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Capacity":      "32GB (2x16GB)",
			"Type":          "DDR5",
			"Speed":         "6000 MHz",
			"Timings":       "CL36-36-36-76",
			"Voltage":       "1.35V",
			"Form Factor":   "DIMM",
			"Heat Spreader": "Aluminum",
			"RGB":           "Capellix RGB LEDs",
			"Warranty":      "Lifetime",
			"XMP":           "XMP 3.0 Ready",
		},
		Rating:   4.6,
		Reviews:  89,
		InStock:  true,
		Features: []string{"DDR5-6000", "RGB Lighting", "Premium Design", "XMP 3.0"},
		Brand:    "Corsair",
		Tags:     []string{"memory", "ddr5", "rgb", "premium"},
	},

	// Storage
	{
		ID:            "samsung-980-pro-2tb",
		Name:          "Samsung 980 PRO 2TB NVMe SSD with Heatsink",
		Category:      "storage",
		Price:         199.99,
		OriginalPrice: 249.99,
		Description:   "Ultra-fast PCIe 4.0 NVMe SSD with integrated heatsink for optimal thermal performance and lightning-fast load times.",
		Image:         "https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Capacity":         "2TB",
			"Interface":        "PCIe 4.0 x4, NVMe 1.3c",
			"Form Factor":      "M.2 2280",
			"Sequential Read":  "Up to 7,000 MB/s",
			"Sequential Write": "Up to 6,900 MB/s",
			"Random Read":      "Up to 1,000K IOPS",
			"Random Write":     "Up to 1,300K IOPS",
			"NAND Type":        "Samsung V-NAND 3-bit MLC",
			"Controller":       "Samsung Elpis",
			"Heatsink":         "Integrated Aluminum",
			"Warranty":         "5 Years",
		},
		Rating:   4.8,
		Reviews:  445,
		InStock:  true,
		Features: []string{"PCIe 4.0", "7000 MB/s", "Heatsink", "5-Year Warranty"},
		Brand:    "Samsung",
		Tags:     []string{"storage", "nvme", "fast", "gaming"},
	},

	// Cooling
	{
		ID:          "nzxt-kraken-x73-rgb",
		Name:        "NZXT Kraken X73 RGB 360mm AIO Liquid Cooler",
		Category:    "cooling",
		Price:       279.99,
		Description: "Premium 360mm all-in-one liquid cooler with customizable RGB lighting and advanced pump technology for superior cooling performance.",
		Image:       "https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/7945685/pexels-photo-7945685.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Radiator Size":  "360mm",
			"Fan Size":       "3x 120mm",
			"Fan Speed":      "500-2000 RPM",
			"Pump Speed":     "800-2800 RPM",
			"Socket Support": "Intel LGA1700/1200/115x, AMD AM5/AM4",
			"Pump Noise":     "<25 dBA",
			"Fan Noise":      "<36 dBA",
			"RGB":            "Customizable RGB",
			"Software":       "CAM Software",
			"Warranty":       "6 Years",
		},
		Rating:   4.5,
		Reviews:  234,
		InStock:  true,
		Features: []string{"360mm Radiator", "RGB Lighting", "CAM Software", "Quiet Operation"},
		Brand:    "NZXT",
		Tags:     []string{"cooling", "aio", "rgb", "quiet"},
	},

	// Monitors
	{
		ID:            "lg-27gn950-4k-gaming",
		Name:          "LG 27GN950-B 27\" 4K UltraGear Gaming Monitor",
		Category:      "monitors",
		Price:         799.99,
		OriginalPrice: 899.99,
		Description:   "27-inch 4K gaming monitor with 144Hz refresh rate, 1ms response time, and NVIDIA G-SYNC compatibility for smooth gaming.",
		Image:         "https://images.pexels.com/photos/777001/pexels-photo-777001.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/777001/pexels-photo-777001.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Screen Size":   "27 inches",
			"Resolution":    "3840 x 2160 (4K UHD)",
			"Panel Type":    "Nano IPS",
			"Refresh Rate":  "144Hz",
			"Response Time": "1ms (GtG)",
			"Color Gamut":   "98% DCI-P3",
			"HDR":           "HDR10, VESA DisplayHDR 600",
			"Connectivity":  "2x HDMI 2.1, 1x DisplayPort 1.4, 2x USB 3.0",
			"G-SYNC":        "Compatible",
			"Stand":         "Height/Tilt/Pivot Adjustable",
			"VESA Mount":    "100x100mm",
		},
		Rating:   4.7,
		Reviews:  312,
		InStock:  true,
		Features: []string{"4K 144Hz", "Nano IPS", "G-SYNC Compatible", "HDR600"},
		Brand:    "LG",
		Tags:     []string{"monitor", "4k", "gaming", "hdr"},
	},

	// Peripherals
	{
		ID:          "logitech-g-pro-x-superlight",
		Name:        "Logitech G PRO X SUPERLIGHT Wireless Gaming Mouse",
		Category:    "peripherals",
		Price:       149.99,
		Description: "Ultra-lightweight wireless gaming mouse weighing less than 63g with HERO 25K sensor and 70-hour battery life.",
		Image:       "https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/2115256/pexels-photo-2115256.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Weight":         "<63g",
			"Sensor":         "HERO 25K",
			"DPI":            "100-25,600",
			"Tracking Speed": ">40G",
			"Battery Life":   "Up to 70 hours",
			"Connectivity":   "LIGHTSPEED Wireless",
			"Switches":       "Mechanical (50M clicks)",
			"Feet":           "PTFE",
			"Compatibility":  "Windows, macOS",
			"Software":       "Logitech G HUB",
		},
		Rating:   4.8,
		Reviews:  567,
		InStock:  true,
		Features: []string{"Ultra-Light", "HERO 25K", "Wireless", "70h Battery"},
		Brand:    "Logitech",
		Tags:     []string{"mouse", "gaming", "wireless", "lightweight"},
	},
	{
		ID:            "corsair-k95-rgb-platinum",
		Name:          "Corsair K95 RGB Platinum XT Mechanical Gaming Keyboard",
		Category:      "peripherals",
		Price:         199.99,
		OriginalPrice: 229.99,
		Description:   "Premium mechanical gaming keyboard with Cherry MX switches, per-key RGB lighting, and dedicated macro keys.",
		Image:         "https://images.pexels.com/photos/1194713/pexels-photo-1194713.jpeg?auto=compress&cs=tinysrgb&w=800",
		Images: []string{
			"https://images.pexels.com/photos/1194713/pexels-photo-1194713.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/2582937/pexels-photo-2582937.jpeg?auto=compress&cs=tinysrgb&w=1200",
			"https://images.pexels.com/photos/1714208/pexels-photo-1714208.jpeg?auto=compress&cs=tinysrgb&w=1200",
		},
		Specifications: map[string]string{
			"Switch Type":    "Cherry MX Speed Silver",
			"Layout":         "Full Size (104 keys)",
			"Backlighting":   "Per-key RGB",
			"Macro Keys":     "6 Dedicated",
			"Media Controls": "Dedicated Volume Wheel",
			"Wrist Rest":     "Detachable Leatherette",
			"Connectivity":   "USB 3.0",
			"Polling Rate":   "1000Hz",
			"Key Rollover":   "Full NKRO",
			"Software":       "iCUE",
		},
		Rating:   4.6,
		Reviews:  423,
		InStock:  true,
		Features: []string{"Cherry MX", "RGB Per-Key", "Macro Keys", "Media Controls"},
		Brand:    "Corsair",
		Tags:     []string{"keyboard", "mechanical", "gaming", "rgb"},
	},
}
