package domain

// ColumnStats describes the distribution of one result column.
type ColumnStats struct {
	Mean   float64 `json:"media"`
	StdDev float64 `json:"desviacion"`
	Min    float64 `json:"min"`
	P5     float64 `json:"p5"`
	Median float64 `json:"mediana"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// Sensitivity is the correlation of a parameter with buy minus rent capital.
type Sensitivity struct {
	Parameter   string  `json:"parametro"`
	Correlation float64 `json:"correlacion"`
}

type Summary struct {
	Samples      int           `json:"muestras"`
	Rent         ColumnStats   `json:"arriendo"`
	Buy          ColumnStats   `json:"compra"`
	BuyWinsShare float64       `json:"proporcion_compra_gana"`
	Sensitivity  []Sensitivity `json:"sensibilidad,omitempty"`
}
