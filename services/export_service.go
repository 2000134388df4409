package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"stayease-backend/models"
	"stayease-backend/repositories"
)

const exportSheet = "Bookings"

var exportHeaders = []string{
	"Reference", "Property", "City", "Renter", "Check-in", "Check-out",
	"Nights", "Guests", "Total", "Status", "Created",
}

// ExportService renders a host's bookings as an Excel workbook.
type ExportService struct {
	store    *repositories.Store
	bookings *BookingService
}

func NewExportService(store *repositories.Store, bookings *BookingService) *ExportService {
	return &ExportService{store: store, bookings: bookings}
}

func (s *ExportService) HostBookingsWorkbook(ctx context.Context, hostID uint) (*bytes.Buffer, error) {
	bookings, err := s.bookings.ListForHost(ctx, hostID)
	if err != nil {
		return nil, err
	}
	properties, err := s.store.Properties.ListByHost(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("list properties of host %d: %w", hostID, err)
	}
	byID := make(map[uint]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	renters := map[uint]string{}
	renterName := func(id uint) string {
		if name, ok := renters[id]; ok {
			return name
		}
		name := fmt.Sprintf("user #%d", id)
		if u, err := s.store.Users.GetByID(ctx, id); err == nil {
			name = u.Username
		}
		renters[id] = name
		return name
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("prepare sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheet, "A1", last, style)
	}

	for i, b := range bookings {
		p := byID[b.PropertyID]
		row := []interface{}{
			b.ReferenceCode,
			p.Title,
			p.City,
			renterName(b.RenterID),
			b.CheckInDate.Format(dateLayout),
			b.CheckOutDate.Format(dateLayout),
			b.Nights,
			b.Guests,
			b.TotalPrice,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write booking %d: %w", b.ID, err)
		}
	}
	_ = f.SetColWidth(exportSheet, "A", "B", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("render workbook: %w", err)
	}
	return buf, nil
}
