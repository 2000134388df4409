package repositories

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"stayease-backend/models"
)

// table is an id-indexed arena with its own auto-increment counter.
type table[T any] struct {
	rows   map[uint]T
	nextID uint
}

func newTable[T any]() table[T] {
	return table[T]{rows: make(map[uint]T), nextID: 1}
}

func (t *table[T]) insert(row T) uint {
	id := t.nextID
	t.nextID++
	t.rows[id] = row
	return id
}

// sorted returns the rows matching keep in ascending id order.
func (t *table[T]) sorted(keep func(T) bool) []T {
	ids := make([]uint, 0, len(t.rows))
	for id, row := range t.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// MemoryStore keeps every entity in process memory. Rows are copied in and
// out so callers never share state with the tables.
type MemoryStore struct {
	mu         sync.RWMutex
	now        func() time.Time
	users      table[models.User]
	properties table[models.Property]
	photos     table[models.Photo]
	reviews    table[models.Review]
	bookings   table[models.Booking]
	waitlist   table[models.WaitlistEntry]
}

// NewMemoryStore returns a Store whose repositories share one MemoryStore.
func NewMemoryStore() *Store {
	m := &MemoryStore{
		now:        time.Now,
		users:      newTable[models.User](),
		properties: newTable[models.Property](),
		photos:     newTable[models.Photo](),
		reviews:    newTable[models.Review](),
		bookings:   newTable[models.Booking](),
		waitlist:   newTable[models.WaitlistEntry](),
	}
	return &Store{
		Users:      memoryUsers{m},
		Properties: memoryProperties{m},
		Photos:     memoryPhotos{m},
		Reviews:    memoryReviews{m},
		Bookings:   memoryBookings{m},
		Waitlist:   memoryWaitlist{m},
	}
}

func cloneProperty(p models.Property) models.Property {
	if p.ExtraAmenities != nil {
		p.ExtraAmenities = append(p.ExtraAmenities[:0:0], p.ExtraAmenities...)
	}
	if p.Rating != nil {
		r := *p.Rating
		p.Rating = &r
	}
	p.Photos = nil
	return p
}

// ---------------------------------------------------------------- users

type memoryUsers struct{ m *MemoryStore }

func (r memoryUsers) Create(_ context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users.rows {
		if u.Username == user.Username || strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicate
		}
	}
	now := r.m.now()
	user.CreatedAt, user.UpdatedAt = now, now
	user.ID = r.m.users.insert(*user)
	r.m.users.rows[user.ID] = *user
	return nil
}

func (r memoryUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	u, ok := r.m.users.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r memoryUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, u := range r.m.users.rows {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, u := range r.m.users.rows {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) Update(_ context.Context, user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	current, ok := r.m.users.rows[user.ID]
	if !ok {
		return ErrNotFound
	}
	for id, u := range r.m.users.rows {
		if id != user.ID && strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicate
		}
	}
	current.Email = user.Email
	current.Phone = user.Phone
	current.FirstName = user.FirstName
	current.LastName = user.LastName
	current.Password = user.Password
	current.IsHost = user.IsHost
	current.UpdatedAt = r.m.now()
	r.m.users.rows[user.ID] = current
	return nil
}

func (r memoryUsers) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.users.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.m.users.rows, id)
	return nil
}

// ----------------------------------------------------------- properties

type memoryProperties struct{ m *MemoryStore }

// withPhotos must be called with the lock held.
func (r memoryProperties) withPhotos(p models.Property) models.Property {
	p = cloneProperty(p)
	p.Photos = r.m.photos.sorted(func(ph models.Photo) bool { return ph.PropertyID == p.ID })
	return p
}

func (r memoryProperties) Create(_ context.Context, property *models.Property) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	now := r.m.now()
	property.CreatedAt, property.UpdatedAt = now, now
	property.ID = r.m.properties.insert(cloneProperty(*property))
	stored := r.m.properties.rows[property.ID]
	stored.ID = property.ID
	r.m.properties.rows[property.ID] = stored
	for i := range property.Photos {
		property.Photos[i].PropertyID = property.ID
		property.Photos[i].CreatedAt = now
		property.Photos[i].ID = r.m.photos.insert(property.Photos[i])
		r.m.photos.rows[property.Photos[i].ID] = property.Photos[i]
	}
	return nil
}

func (r memoryProperties) GetByID(_ context.Context, id uint) (*models.Property, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	p, ok := r.m.properties.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := r.withPhotos(p)
	return &out, nil
}

func (r memoryProperties) List(_ context.Context) ([]models.Property, error) {
	return r.list(nil), nil
}

func (r memoryProperties) ListByHost(_ context.Context, hostID uint) ([]models.Property, error) {
	return r.list(func(p models.Property) bool { return p.HostID == hostID }), nil
}

func (r memoryProperties) list(keep func(models.Property) bool) []models.Property {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	rows := r.m.properties.sorted(keep)
	for i := range rows {
		rows[i] = r.withPhotos(rows[i])
	}
	return rows
}

func (r memoryProperties) Update(_ context.Context, property *models.Property) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	current, ok := r.m.properties.rows[property.ID]
	if !ok {
		return ErrNotFound
	}
	next := cloneProperty(*property)
	next.HostID = current.HostID
	next.Rating = current.Rating
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = r.m.now()
	r.m.properties.rows[property.ID] = next
	return nil
}

func (r memoryProperties) SetRating(_ context.Context, id uint, rating *int) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	current, ok := r.m.properties.rows[id]
	if !ok {
		return ErrNotFound
	}
	current.Rating = nil
	if rating != nil {
		v := *rating
		current.Rating = &v
	}
	r.m.properties.rows[id] = current
	return nil
}

func (r memoryProperties) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.properties.rows[id]; !ok {
		return ErrNotFound
	}
	for pid, ph := range r.m.photos.rows {
		if ph.PropertyID == id {
			delete(r.m.photos.rows, pid)
		}
	}
	for rid, rv := range r.m.reviews.rows {
		if rv.PropertyID == id {
			delete(r.m.reviews.rows, rid)
		}
	}
	for bid, b := range r.m.bookings.rows {
		if b.PropertyID == id {
			delete(r.m.bookings.rows, bid)
		}
	}
	delete(r.m.properties.rows, id)
	return nil
}

// --------------------------------------------------------------- photos

type memoryPhotos struct{ m *MemoryStore }

func (r memoryPhotos) Create(_ context.Context, photo *models.Photo) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.properties.rows[photo.PropertyID]; !ok {
		return ErrNotFound
	}
	photo.CreatedAt = r.m.now()
	photo.ID = r.m.photos.insert(*photo)
	r.m.photos.rows[photo.ID] = *photo
	return nil
}

func (r memoryPhotos) GetByID(_ context.Context, id uint) (*models.Photo, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	ph, ok := r.m.photos.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ph, nil
}

func (r memoryPhotos) ListByProperty(_ context.Context, propertyID uint) ([]models.Photo, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	return r.m.photos.sorted(func(ph models.Photo) bool { return ph.PropertyID == propertyID }), nil
}

func (r memoryPhotos) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.photos.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.m.photos.rows, id)
	return nil
}

// -------------------------------------------------------------- reviews

type memoryReviews struct{ m *MemoryStore }

func (r memoryReviews) Create(_ context.Context, review *models.Review) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, rv := range r.m.reviews.rows {
		if rv.UserID == review.UserID && rv.PropertyID == review.PropertyID {
			return ErrDuplicate
		}
	}
	now := r.m.now()
	review.CreatedAt, review.UpdatedAt = now, now
	review.ID = r.m.reviews.insert(*review)
	r.m.reviews.rows[review.ID] = *review
	return nil
}

func (r memoryReviews) GetByID(_ context.Context, id uint) (*models.Review, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	rv, ok := r.m.reviews.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rv, nil
}

func (r memoryReviews) GetByUserAndProperty(_ context.Context, userID, propertyID uint) (*models.Review, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, rv := range r.m.reviews.rows {
		if rv.UserID == userID && rv.PropertyID == propertyID {
			return &rv, nil
		}
	}
	return nil, ErrNotFound
}

// ListByProperty returns the newest review first, like the SQL store.
func (r memoryReviews) ListByProperty(_ context.Context, propertyID uint) ([]models.Review, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	rows := r.m.reviews.sorted(func(rv models.Review) bool { return rv.PropertyID == propertyID })
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}

func (r memoryReviews) Update(_ context.Context, review *models.Review) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	current, ok := r.m.reviews.rows[review.ID]
	if !ok {
		return ErrNotFound
	}
	current.Rating = review.Rating
	current.Comment = review.Comment
	current.UpdatedAt = r.m.now()
	r.m.reviews.rows[review.ID] = current
	return nil
}

func (r memoryReviews) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.reviews.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.m.reviews.rows, id)
	return nil
}

// ------------------------------------------------------------- bookings

type memoryBookings struct{ m *MemoryStore }

func (r memoryBookings) Create(_ context.Context, booking *models.Booking) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.bookings.rows {
		if booking.ReferenceCode != "" && b.ReferenceCode == booking.ReferenceCode {
			return ErrDuplicate
		}
	}
	if booking.Status == "" {
		booking.Status = models.BookingStatusPending
	}
	now := r.m.now()
	booking.CreatedAt, booking.UpdatedAt = now, now
	booking.ID = r.m.bookings.insert(*booking)
	r.m.bookings.rows[booking.ID] = *booking
	return nil
}

func (r memoryBookings) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	b, ok := r.m.bookings.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r memoryBookings) ListByRenter(_ context.Context, renterID uint) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.RenterID == renterID }), nil
}

func (r memoryBookings) ListByProperty(_ context.Context, propertyID uint) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.PropertyID == propertyID }), nil
}

func (r memoryBookings) ListByProperties(_ context.Context, propertyIDs []uint) ([]models.Booking, error) {
	wanted := make(map[uint]struct{}, len(propertyIDs))
	for _, id := range propertyIDs {
		wanted[id] = struct{}{}
	}
	return r.list(func(b models.Booking) bool {
		_, ok := wanted[b.PropertyID]
		return ok
	}), nil
}

// list orders by check-in date, then id.
func (r memoryBookings) list(keep func(models.Booking) bool) []models.Booking {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	rows := r.m.bookings.sorted(keep)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CheckInDate.Before(rows[j].CheckInDate) })
	return rows
}

func (r memoryBookings) Update(_ context.Context, booking *models.Booking) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	current, ok := r.m.bookings.rows[booking.ID]
	if !ok {
		return ErrNotFound
	}
	current.CheckInDate = booking.CheckInDate
	current.CheckOutDate = booking.CheckOutDate
	current.Guests = booking.Guests
	current.Nights = booking.Nights
	current.TotalPrice = booking.TotalPrice
	current.Status = booking.Status
	current.UpdatedAt = r.m.now()
	r.m.bookings.rows[booking.ID] = current
	return nil
}

func (r memoryBookings) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.bookings.rows[id]; !ok {
		return ErrNotFound
	}
	delete(r.m.bookings.rows, id)
	return nil
}

// ------------------------------------------------------------- waitlist

type memoryWaitlist struct{ m *MemoryStore }

func (r memoryWaitlist) Create(_ context.Context, entry *models.WaitlistEntry) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, e := range r.m.waitlist.rows {
		if strings.EqualFold(e.Email, entry.Email) {
			return ErrDuplicate
		}
	}
	entry.CreatedAt = r.m.now()
	entry.ID = r.m.waitlist.insert(*entry)
	r.m.waitlist.rows[entry.ID] = *entry
	return nil
}

func (r memoryWaitlist) GetByEmail(_ context.Context, email string) (*models.WaitlistEntry, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, e := range r.m.waitlist.rows {
		if strings.EqualFold(e.Email, email) {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}
