package equipment

// Type identifies an equipment category. Each category has its own allocator
// in the application layer, resolved through a registry rather than by name.
type Type string

const (
	TypeOvens                Type = "OVENS"
	TypeMixers               Type = "MIXERS"
	TypeCookingMixers        Type = "COOKING_MIXERS"
	TypeFermentationCabinets Type = "FERMENTATION_CABINETS"
	TypeScales               Type = "SCALES"
	TypeStoves               Type = "STOVES"
	TypeFryers               Type = "FRYERS"
	TypeBenches              Type = "BENCHES"
	TypeDividers             Type = "DIVIDERS"
	TypeModelers             Type = "MODELERS"
	TypePackagers            Type = "PACKAGERS"
	TypeColdStorage          Type = "COLD_STORAGE"
)

// Sector is the production area a piece of equipment belongs to
type Sector string

const (
	SectorBakery       Sector = "BAKERY"
	SectorPastry       Sector = "PASTRY"
	SectorSavory       Sector = "SAVORY"
	SectorConfectioner Sector = "CONFECTIONERY"
	SectorCold         Sector = "COLD"
)

// Equipment holds the identity shared by every physical resource. Variants
// embed it and add their capacity model and settings constraints.
type Equipment struct {
	id        int
	name      string
	equipType Type
	sector    Sector
	operators int
	ledger    *Ledger
}

// NewEquipment creates the embedded identity for an equipment variant
func NewEquipment(id int, name string, equipType Type, sector Sector, operators int) Equipment {
	return Equipment{
		id:        id,
		name:      name,
		equipType: equipType,
		sector:    sector,
		operators: operators,
		ledger:    NewLedger(),
	}
}

func (e *Equipment) ID() int         { return e.id }
func (e *Equipment) Name() string    { return e.name }
func (e *Equipment) Type() Type      { return e.equipType }
func (e *Equipment) Sector() Sector  { return e.sector }
func (e *Equipment) Operators() int  { return e.operators }
func (e *Equipment) Ledger() *Ledger { return e.ledger }

// Resource is the minimal surface allocators need from any variant
type Resource interface {
	ID() int
	Name() string
	Type() Type
	Sector() Sector
	Ledger() *Ledger
}
