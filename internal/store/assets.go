package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/balancebook-dev/balancebook/internal/asset"
	"github.com/balancebook-dev/balancebook/internal/fiscal"
)

const (
	astNumFields     = 23
	astColID         = 0
	astColCategory   = 1
	astColName       = 2
	astColSerial     = 3
	astColCost       = 4
	astColSalvage    = 5
	astColLife       = 6
	astColMethod     = 7
	astColAccum      = 8
	astColBook       = 9
	astColStatus     = 10
	astColAcquired   = 11
	astColDepStart   = 12
	astColDepThrough = 13
	astColSuspWhy    = 14
	astColDispAt     = 15
	astColDispHow    = 16
	astColDispValue  = 17
	astColDispGain   = 18
	astColDispWhy    = 19
	astColVersion    = 20
	astColCAt        = 21
	astColUAt        = 22
)

// ReadAssets reads assets.csv.
func ReadAssets(r io.Reader) ([]*asset.FixedAsset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = astNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading assets CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var assets []*asset.FixedAsset
	for i, rec := range records[1:] {
		a, err := unmarshalAsset(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// WriteAssets writes assets.csv.
func WriteAssets(w io.Writer, assets []*asset.FixedAsset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"id", "category_id", "name", "serial_number", "cost", "salvage",
		"life_months", "method", "accumulated", "book_value", "status",
		"acquired_at", "depreciation_start", "depreciated_through", "suspend_reason",
		"disposed_at", "disposal_method", "disposal_value", "disposal_gain",
		"disposal_reason", "version", "created_at", "updated_at",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, a := range assets {
		if err := cw.Write(marshalAsset(a)); err != nil {
			return fmt.Errorf("writing asset %s: %w", a.Name, err)
		}
	}
	return cw.Error()
}

func marshalAsset(a *asset.FixedAsset) []string {
	row := make([]string, astNumFields)
	row[astColID] = a.ID
	row[astColCategory] = a.CategoryID
	row[astColName] = a.Name
	row[astColSerial] = a.SerialNumber
	row[astColCost] = a.Cost.StringFixed(2)
	row[astColSalvage] = a.Salvage.StringFixed(2)
	row[astColLife] = strconv.Itoa(a.LifeMonths)
	row[astColMethod] = string(a.Method)
	row[astColAccum] = a.Accumulated.StringFixed(2)
	row[astColBook] = a.BookValue.StringFixed(2)
	row[astColStatus] = string(a.Status)
	row[astColAcquired] = fmtDate(a.AcquiredAt)
	row[astColDepStart] = fmtDate(a.DepreciationStart)
	if a.DepreciatedThrough != (fiscal.Period{}) {
		row[astColDepThrough] = a.DepreciatedThrough.String()
	}
	row[astColSuspWhy] = a.SuspendReason
	row[astColDispAt] = fmtTime(a.DisposedAt)
	row[astColDispHow] = string(a.DisposalMethod)
	row[astColDispValue] = a.DisposalValue.StringFixed(2)
	row[astColDispGain] = a.DisposalGain.StringFixed(2)
	row[astColDispWhy] = a.DisposalReason
	row[astColVersion] = strconv.Itoa(a.Version)
	row[astColCAt] = fmtTime(a.CreatedAt)
	row[astColUAt] = fmtTime(a.UpdatedAt)
	return row
}

func unmarshalAsset(rec []string) (*asset.FixedAsset, error) {
	cost, err := decimal.NewFromString(rec[astColCost])
	if err != nil {
		return nil, fmt.Errorf("parsing cost %q: %w", rec[astColCost], err)
	}
	salvage, err := decimal.NewFromString(rec[astColSalvage])
	if err != nil {
		return nil, fmt.Errorf("parsing salvage %q: %w", rec[astColSalvage], err)
	}
	life, err := strconv.Atoi(rec[astColLife])
	if err != nil {
		return nil, fmt.Errorf("parsing life_months %q: %w", rec[astColLife], err)
	}
	accum, err := decimal.NewFromString(rec[astColAccum])
	if err != nil {
		return nil, fmt.Errorf("parsing accumulated %q: %w", rec[astColAccum], err)
	}
	book, err := decimal.NewFromString(rec[astColBook])
	if err != nil {
		return nil, fmt.Errorf("parsing book_value %q: %w", rec[astColBook], err)
	}
	dispValue, err := decimal.NewFromString(rec[astColDispValue])
	if err != nil {
		return nil, fmt.Errorf("parsing disposal_value %q: %w", rec[astColDispValue], err)
	}
	dispGain, err := decimal.NewFromString(rec[astColDispGain])
	if err != nil {
		return nil, fmt.Errorf("parsing disposal_gain %q: %w", rec[astColDispGain], err)
	}
	version, err := strconv.Atoi(rec[astColVersion])
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", rec[astColVersion], err)
	}
	acquired, err := parseDate(rec[astColAcquired])
	if err != nil {
		return nil, err
	}
	depStart, err := parseDate(rec[astColDepStart])
	if err != nil {
		return nil, err
	}
	var depThrough fiscal.Period
	if rec[astColDepThrough] != "" {
		depThrough, err = fiscal.Parse(rec[astColDepThrough])
		if err != nil {
			return nil, fmt.Errorf("parsing depreciated_through %q: %w", rec[astColDepThrough], err)
		}
	}
	disposedAt, err := parseTime(rec[astColDispAt])
	if err != nil {
		return nil, err
	}
	createdAt, err := parseTime(rec[astColCAt])
	if err != nil {
		return nil, err
	}
	updatedAt, err := parseTime(rec[astColUAt])
	if err != nil {
		return nil, err
	}

	return asset.RehydrateAsset(asset.FixedAsset{
		ID:                 rec[astColID],
		CategoryID:         rec[astColCategory],
		Name:               rec[astColName],
		SerialNumber:       rec[astColSerial],
		Cost:               cost,
		Salvage:            salvage,
		LifeMonths:         life,
		Method:             asset.Method(rec[astColMethod]),
		Accumulated:        accum,
		BookValue:          book,
		Status:             asset.Status(rec[astColStatus]),
		AcquiredAt:         acquired,
		DepreciationStart:  depStart,
		DepreciatedThrough: depThrough,
		SuspendReason:      rec[astColSuspWhy],
		DisposedAt:         disposedAt,
		DisposalMethod:     asset.DisposalMethod(rec[astColDispHow]),
		DisposalValue:      dispValue,
		DisposalGain:       dispGain,
		DisposalReason:     rec[astColDispWhy],
		Version:            version,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}), nil
}
