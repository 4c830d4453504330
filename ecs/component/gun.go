package component

type Gun struct {
	Cooldown float64
	Elapsed  float64
	Ready    bool
}

var GunComponent = NewComponent[Gun]()
