package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/andrescamacho/bakeplan-go/internal/domain/recipe"
	"github.com/andrescamacho/bakeplan-go/internal/domain/schedule"
	"github.com/andrescamacho/bakeplan-go/internal/domain/shared"
	"github.com/andrescamacho/bakeplan-go/internal/domain/staff"
)

// OrderStatus tracks a production order through its lifecycle
type OrderStatus string

const (
	OrderCreated         OrderStatus = "CREATED"
	OrderStructured      OrderStatus = "STRUCTURED"
	OrderActivitiesBuilt OrderStatus = "ACTIVITIES_BUILT"
	OrderExecuting       OrderStatus = "EXECUTING"
	OrderCompleted       OrderStatus = "COMPLETED"
	OrderRolledBack      OrderStatus = "ROLLED_BACK"
)

// OrderStateError reports an operation invoked outside its lifecycle stage
type OrderStateError struct {
	OrderID   int
	RequestID int
	From      OrderStatus
	To        OrderStatus
}

func (e *OrderStateError) Error() string {
	return fmt.Sprintf("order %d request %d: cannot transition from %s to %s",
		e.OrderID, e.RequestID, e.From, e.To)
}

// subproductBatch is one subproduct the order must actually produce, in the
// order the bill-of-materials walk discovered it
type subproductBatch struct {
	itemID     int
	name       string
	quantity   decimal.Decimal
	activities []*schedule.Activity
}

// ProductionOrder coordinates one customer request end to end: expand the
// technical sheet, build the activity list, execute the backward allocation
// and, on any failure, roll the whole request back. Product activities are
// always produced; subproducts are skipped when stock already covers them.
type ProductionOrder struct {
	orderID   int
	requestID int
	productID int
	quantity  decimal.Decimal
	journey   shared.Window

	sheets      recipe.SheetSource
	activities  schedule.ActivitySource
	professions schedule.ProfessionSource
	stock       recipe.StockChecker
	allocator   *ActivityAllocator
	registry    *Registry
	staffMgr    *StaffManager
	auditLog    OrderLogSink
	comandas    ComandaSink
	log         *logrus.Entry

	status           OrderStatus
	rootSheet        *recipe.TechnicalSheet
	eligibleStaff    []staff.Profession
	productActs      []*schedule.Activity
	subproducts      []subproductBatch
	nextActivityID   int
	rolledBack       bool
	comandaGenerated bool
}

// OrderDeps bundles the collaborators a production order needs
type OrderDeps struct {
	Sheets      recipe.SheetSource
	Activities  schedule.ActivitySource
	Professions schedule.ProfessionSource
	Stock       recipe.StockChecker
	Allocator   *ActivityAllocator
	Registry    *Registry
	Staff       *StaffManager
	AuditLog    OrderLogSink
	Comandas    ComandaSink
}

// NewProductionOrder creates an order in the CREATED state
func NewProductionOrder(orderID, requestID, productID int, quantity decimal.Decimal,
	journey shared.Window, deps OrderDeps) *ProductionOrder {
	return &ProductionOrder{
		orderID:     orderID,
		requestID:   requestID,
		productID:   productID,
		quantity:    quantity,
		journey:     journey,
		sheets:      deps.Sheets,
		activities:  deps.Activities,
		professions: deps.Professions,
		stock:       deps.Stock,
		allocator:   deps.Allocator,
		registry:    deps.Registry,
		staffMgr:    deps.Staff,
		auditLog:    deps.AuditLog,
		comandas:    deps.Comandas,
		status:      OrderCreated,
		log: logrus.WithFields(logrus.Fields{
			"order":   orderID,
			"request": requestID,
			"product": productID,
		}),
	}
}

func (o *ProductionOrder) OrderID() int              { return o.orderID }
func (o *ProductionOrder) RequestID() int            { return o.requestID }
func (o *ProductionOrder) ProductID() int            { return o.productID }
func (o *ProductionOrder) Quantity() decimal.Decimal { return o.quantity }
func (o *ProductionOrder) Journey() shared.Window    { return o.journey }
func (o *ProductionOrder) Status() OrderStatus       { return o.status }

// EligibleStaff returns the professions the whole order may draw on
func (o *ProductionOrder) EligibleStaff() []staff.Profession {
	out := make([]staff.Profession, len(o.eligibleStaff))
	copy(out, o.eligibleStaff)
	return out
}

// Activities returns every activity of the order, product first then
// subproducts in discovery order
func (o *ProductionOrder) Activities() []*schedule.Activity {
	out := make([]*schedule.Activity, 0, len(o.productActs))
	out = append(out, o.productActs...)
	for _, batch := range o.subproducts {
		out = append(out, batch.activities...)
	}
	return out
}

// BuildStructure loads the root technical sheet and computes the eligible
// staff subset: the union of professions required by the product and every
// subproduct below it
func (o *ProductionOrder) BuildStructure() error {
	if o.status != OrderCreated {
		return &OrderStateError{OrderID: o.orderID, RequestID: o.requestID, From: o.status, To: OrderStructured}
	}

	root, err := o.sheets.Sheet(o.productID, recipe.ItemProduct)
	if err != nil {
		return fmt.Errorf("order %d: loading root sheet: %w", o.orderID, err)
	}
	o.rootSheet = root

	seen := make(map[staff.Profession]bool)
	if err := o.collectProfessions(root, seen); err != nil {
		return err
	}

	o.status = OrderStructured
	o.log.WithField("professions", len(o.eligibleStaff)).Debug("order structure built")
	return nil
}

func (o *ProductionOrder) collectProfessions(sheet *recipe.TechnicalSheet, seen map[staff.Profession]bool) error {
	profs, err := o.professions.ProfessionsFor(sheet.ItemID())
	if err != nil {
		return fmt.Errorf("order %d: professions for item %d: %w", o.orderID, sheet.ItemID(), err)
	}
	for _, p := range profs {
		if !seen[p] {
			seen[p] = true
			o.eligibleStaff = append(o.eligibleStaff, p)
		}
	}

	for _, c := range sheet.Components() {
		if c.ItemType != recipe.ItemSubproduct {
			continue
		}
		child, err := o.sheets.Sheet(c.ItemID, recipe.ItemSubproduct)
		if err != nil {
			var notFound *recipe.SheetNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return err
		}
		if err := o.collectProfessions(child, seen); err != nil {
			return err
		}
	}
	return nil
}

// BuildActivities instantiates the product's activities and, walking the bill
// of materials, the activities of every subproduct that must actually be
// produced. A subproduct whose stock already covers the requirement is
// skipped together with its entire subtree; stock-check failures count as
// insufficient stock, so the order produces rather than trusting a broken
// answer.
func (o *ProductionOrder) BuildActivities() error {
	if o.status != OrderStructured {
		return &OrderStateError{OrderID: o.orderID, RequestID: o.requestID, From: o.status, To: OrderActivitiesBuilt}
	}

	if err := o.buildItemActivities(o.productID, recipe.ItemProduct, o.quantity, nil); err != nil {
		return err
	}

	if err := o.expandSubproducts(o.rootSheet, o.quantity); err != nil {
		return err
	}

	o.status = OrderActivitiesBuilt
	o.log.WithFields(logrus.Fields{
		"product_activities": len(o.productActs),
		"subproducts":        len(o.subproducts),
	}).Debug("order activities built")
	return nil
}

func (o *ProductionOrder) buildItemActivities(itemID int, itemType recipe.ItemType,
	quantity decimal.Decimal, batch *subproductBatch) error {

	specs, err := o.activities.ActivitiesFor(itemID, itemType)
	if err != nil {
		return fmt.Errorf("order %d: activities for item %d: %w", o.orderID, itemID, err)
	}

	for _, spec := range specs {
		o.nextActivityID++
		act, err := schedule.NewActivity(o.nextActivityID, o.orderID, o.requestID,
			itemID, itemType, quantity.InexactFloat64(), spec)
		if err != nil {
			return err
		}
		if batch != nil {
			batch.activities = append(batch.activities, act)
		} else {
			o.productActs = append(o.productActs, act)
		}
	}
	return nil
}

func (o *ProductionOrder) expandSubproducts(sheet *recipe.TechnicalSheet, quantity decimal.Decimal) error {
	reqs, err := sheet.ComponentRequirements(quantity)
	if err != nil {
		return err
	}

	for _, req := range reqs {
		if req.Component.ItemType != recipe.ItemSubproduct {
			continue
		}

		if o.stockCovers(req.Component.ItemID, req.Quantity) {
			o.log.WithFields(logrus.Fields{
				"item":     req.Component.ItemID,
				"quantity": req.Quantity.String(),
			}).Info("subproduct covered by stock, skipping")
			continue
		}

		batch := subproductBatch{
			itemID:   req.Component.ItemID,
			name:     req.Component.Name,
			quantity: req.Quantity,
		}
		if err := o.buildItemActivities(req.Component.ItemID, recipe.ItemSubproduct,
			req.Quantity, &batch); err != nil {
			return err
		}
		o.subproducts = append(o.subproducts, batch)

		child, err := o.sheets.Sheet(req.Component.ItemID, recipe.ItemSubproduct)
		if err != nil {
			var notFound *recipe.SheetNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return err
		}
		if err := o.expandSubproducts(child, req.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// stockCovers asks the stock checker whether production can be skipped.
// Errors are conservative: a failed check means produce it.
func (o *ProductionOrder) stockCovers(itemID int, quantity decimal.Decimal) bool {
	if o.stock == nil {
		return false
	}
	ok, err := o.stock.Sufficient(itemID, quantity)
	if err != nil {
		o.log.WithError(err).WithField("item", itemID).Warn("stock check failed, producing anyway")
		return false
	}
	return ok
}

// GenerateComanda computes the full reservation ticket of the order: every
// item the production will consume, recursively, with its computed quantity.
// The ticket is persisted when a sink is wired.
func (o *ProductionOrder) GenerateComanda() (*recipe.Comanda, error) {
	if o.rootSheet == nil {
		return nil, &OrderStateError{OrderID: o.orderID, RequestID: o.requestID, From: o.status, To: OrderActivitiesBuilt}
	}

	items, err := o.comandaItems(o.rootSheet, o.quantity)
	if err != nil {
		return nil, err
	}
	c := &recipe.Comanda{
		OrderID:   o.orderID,
		RequestID: o.requestID,
		ProductID: o.productID,
		Items:     items,
	}

	if o.comandas != nil {
		if err := o.comandas.Save(c); err != nil {
			return nil, fmt.Errorf("order %d: saving comanda: %w", o.orderID, err)
		}
	}
	o.comandaGenerated = true
	return c, nil
}

func (o *ProductionOrder) comandaItems(sheet *recipe.TechnicalSheet, quantity decimal.Decimal) ([]recipe.ComandaItem, error) {
	reqs, err := sheet.ComponentRequirements(quantity)
	if err != nil {
		return nil, err
	}

	items := make([]recipe.ComandaItem, 0, len(reqs))
	for _, req := range reqs {
		item := recipe.ComandaItem{
			ItemID:   req.Component.ItemID,
			Name:     req.Component.Name,
			Policy:   req.Component.Policy,
			Quantity: req.Quantity,
		}
		if req.Component.ItemType == recipe.ItemSubproduct {
			child, err := o.sheets.Sheet(req.Component.ItemID, recipe.ItemSubproduct)
			if err == nil {
				children, err := o.comandaItems(child, req.Quantity)
				if err != nil {
					return nil, err
				}
				item.Children = children
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// Execute runs the backward allocation of the whole order. Product activities
// go first in reverse declaration order, each bounded by the start of the one
// allocated before it; subproduct chains follow, bounded by the earliest
// product start. Any allocation failure or wait violation rolls the entire
// order back.
func (o *ProductionOrder) Execute() error {
	if o.status != OrderActivitiesBuilt {
		return &OrderStateError{OrderID: o.orderID, RequestID: o.requestID, From: o.status, To: OrderExecuting}
	}
	o.status = OrderExecuting

	earliestStart, err := o.executeChain(o.productActs, o.journey.End)
	if err != nil {
		o.failAndRollback(err)
		return err
	}

	for _, batch := range o.subproducts {
		if _, err := o.executeChain(batch.activities, earliestStart); err != nil {
			o.failAndRollback(err)
			return err
		}
	}

	o.status = OrderCompleted
	o.log.Info("order completed")
	return nil
}

// executeChain allocates one item's activities in reverse declaration order,
// walking a deadline cursor backward. After each allocation the wait law to
// the already-placed successor is enforced. Returns the earliest realized
// start of the chain.
func (o *ProductionOrder) executeChain(acts []*schedule.Activity, deadline time.Time) (time.Time, error) {
	ordered := make([]*schedule.Activity, len(acts))
	copy(ordered, acts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SpecID() > ordered[j].SpecID()
	})

	currentEnd := deadline
	earliest := deadline
	var successor *schedule.Activity
	for _, act := range ordered {
		window := shared.Window{Start: o.journey.Start, End: currentEnd}
		if !window.End.After(window.Start) {
			return time.Time{}, &schedule.NoWindowError{
				ActivityID: act.SpecID(),
				Activity:   act.Name(),
				Window:     o.journey,
			}
		}
		if err := o.allocator.Allocate(act, window); err != nil {
			return time.Time{}, err
		}

		if successor != nil {
			if err := act.CheckWait(successor.Window().Start); err != nil {
				return time.Time{}, err
			}
		}

		currentEnd = act.Window().Start
		earliest = act.Window().Start
		successor = act
	}
	return earliest, nil
}

func (o *ProductionOrder) failAndRollback(cause error) {
	o.log.WithError(cause).Error("order failed, rolling back")
	if o.auditLog != nil {
		if err := o.auditLog.RecordFailure(o.orderID, o.requestID, cause); err != nil {
			o.log.WithError(err).Warn("recording failure log failed")
		}
	}
	o.Rollback()
}

// Rollback releases every occupancy and engagement of this request and
// removes its log artifacts. It is idempotent and best-effort: releases that
// find nothing are no-ops, and artifact removal failures are logged without
// masking the original error.
func (o *ProductionOrder) Rollback() {
	released := 0
	if o.registry != nil {
		released += o.registry.ReleaseByRequest(o.orderID, o.requestID)
	}
	if o.staffMgr != nil {
		released += o.staffMgr.ReleaseByRequest(o.orderID, o.requestID)
	}
	if released == 0 && o.rolledBack {
		o.log.Debug("rollback repeated with nothing to release")
	}

	for _, act := range o.Activities() {
		act.Reset()
	}

	if o.auditLog != nil {
		if err := o.auditLog.Discard(o.orderID, o.requestID); err != nil {
			o.log.WithError(err).Warn("discarding audit log failed")
		}
	}
	if o.comandas != nil && o.comandaGenerated {
		if err := o.comandas.Delete(o.orderID); err != nil {
			o.log.WithError(err).Warn("deleting comanda failed")
		}
	}

	o.rolledBack = true
	o.status = OrderRolledBack
	o.log.WithField("released", released).Info("order rolled back")
}
