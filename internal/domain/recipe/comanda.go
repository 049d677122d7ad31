package recipe

import "github.com/shopspring/decimal"

// ComandaItem is one reserved item in a comanda, mirroring the technical
// sheet node it was computed from.
type ComandaItem struct {
	ItemID   int              `json:"id_item"`
	Name     string           `json:"nome"`
	Policy   ProductionPolicy `json:"politica_producao"`
	Quantity decimal.Decimal  `json:"quantidade_necessaria"`
	Children []ComandaItem    `json:"itens_necessarios,omitempty"`
}

// Comanda is the reservation ticket generated before an order executes: the
// recursive list of items the order will consume.
type Comanda struct {
	OrderID   int           `json:"id_ordem"`
	RequestID int           `json:"id_pedido"`
	ProductID int           `json:"id_produto"`
	Items     []ComandaItem `json:"itens"`
}
