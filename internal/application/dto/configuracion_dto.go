package dto

// ConfiguracionResponse parámetros vigentes del sistema, de solo lectura.
// Los valores se fijan por variables de entorno y requieren reinicio para
// cambiar.
type ConfiguracionResponse struct {
	App             string `json:"app"`
	Entorno         string `json:"entorno"`
	UmbralStockBajo int    `json:"umbral_stock_bajo"`
}
