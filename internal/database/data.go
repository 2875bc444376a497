package database

// Built-in chip table. Entries marked verified have been exercised against
// real hardware; the rest are datasheet values.
var eproms = []EPROM{
	{
		Name:         "2716",
		Manufacturer: "Various",
		MemorySize:   0x800,
		PinCount:     24,
		Type:         TypeEPROM,
		VPP:          25,
		PulseDelay:   50000,
	},
	{
		Name:         "2732",
		Manufacturer: "Various",
		MemorySize:   0x1000,
		PinCount:     24,
		Type:         TypeEPROM,
		VPP:          21,
		PulseDelay:   50000,
	},
	{
		Name:         "2764",
		Manufacturer: "Various",
		MemorySize:   0x2000,
		PinCount:     28,
		Type:         TypeEPROM,
		VPP:          21,
		PulseDelay:   1000,
	},
	{
		Name:         "27128",
		Manufacturer: "Various",
		MemorySize:   0x4000,
		PinCount:     28,
		Type:         TypeEPROM,
		VPP:          21,
		PulseDelay:   1000,
	},
	{
		Name:         "27256",
		Manufacturer: "Various",
		Verified:     true,
		MemorySize:   0x8000,
		PinCount:     28,
		Type:         TypeEPROM,
		VPP:          12.5,
		PulseDelay:   1000,
	},
	{
		Name:         "27512",
		Manufacturer: "Various",
		Verified:     true,
		MemorySize:   0x10000,
		PinCount:     28,
		Type:         TypeEPROM,
		VPP:          12.5,
		PulseDelay:   1000,
	},
	{
		Name:         "W27C512",
		Manufacturer: "Winbond",
		Verified:     true,
		MemorySize:   0x10000,
		PinCount:     28,
		Type:         TypeEPROM,
		CanErase:     true,
		VPP:          12,
		PulseDelay:   100,
	},
	{
		Name:         "W27E257",
		Manufacturer: "Winbond",
		MemorySize:   0x8000,
		PinCount:     28,
		Type:         TypeEPROM,
		CanErase:     true,
		VPP:          12,
		PulseDelay:   100,
	},
	{
		Name:         "AT28C256",
		Manufacturer: "Atmel",
		Verified:     true,
		MemorySize:   0x8000,
		PinCount:     28,
		Type:         TypeEPROM,
		CanErase:     true,
		HasChipID:    true,
		ChipID:       0x1f86,
		VPP:          5,
		PulseDelay:   0,
	},
	{
		Name:         "M27C1001",
		Manufacturer: "ST",
		MemorySize:   0x20000,
		PinCount:     32,
		Type:         TypeEPROM,
		VPP:          12.75,
		PulseDelay:   100,
	},
	{
		Name:         "6116",
		Manufacturer: "Various",
		Verified:     true,
		MemorySize:   0x800,
		PinCount:     24,
		Type:         TypeSRAM,
	},
	{
		Name:         "62256",
		Manufacturer: "Various",
		Verified:     true,
		MemorySize:   0x8000,
		PinCount:     28,
		Type:         TypeSRAM,
	},
}
