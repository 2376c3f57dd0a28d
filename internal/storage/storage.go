package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"code.sztanpet.net/zvpsz/flight-announcer/internal/config"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/file"
	"code.sztanpet.net/zvpsz/flight-announcer/internal/flight"
	"github.com/go-sql-driver/mysql"
	"github.com/juju/loggo"
	"github.com/lib/pq"
)

// Storage persists Sightings to disk before inserting them into a database
type Storage struct {
	ctx    context.Context
	path   string
	driver string
	db     *sql.DB
	insert chan inData

	stmtMu sync.RWMutex
	inStmt *sql.Stmt

	bufMu sync.Mutex
	inBuf map[string]Sighting
}

type inData struct {
	path string
	data Sighting
}

// Sighting is one flight seen on approach.
type Sighting struct {
	Callsign           string
	AircraftType       string
	TypeCode           string
	Registration       string
	Origin             string
	Destination        string
	AltitudeFeet       int
	IsPrivateJet       bool
	IsHelicopter       bool
	IsCanadianOrigin   bool
	IsCanadianAircraft bool
	SeenAt             time.Time
}

// SightingOf records r, an unknown altitude is stored as 0.
func SightingOf(r flight.Record) Sighting {
	s := Sighting{
		Callsign:           r.Callsign,
		AircraftType:       r.AircraftType,
		TypeCode:           r.TypeCode,
		Registration:       r.Registration,
		Origin:             r.Origin,
		Destination:        r.Destination,
		IsPrivateJet:       r.IsPrivateJet,
		IsHelicopter:       r.IsHelicopter,
		IsCanadianOrigin:   r.IsCanadianOrigin,
		IsCanadianAircraft: r.IsCanadianAircraft,
		SeenAt:             r.SeenAt,
	}
	if r.AltitudeFeet != nil {
		s.AltitudeFeet = *r.AltitudeFeet
	}
	return s
}

var logger = loggo.GetLogger("main.storage")
var pathProcessDurr = 1 * time.Minute

const schema = `
	CREATE TABLE IF NOT EXISTS sightings (
		callsign VARCHAR(16) NOT NULL,
		aircraft_type VARCHAR(64) NOT NULL,
		type_code VARCHAR(8) NOT NULL,
		registration VARCHAR(16) NOT NULL,
		origin VARCHAR(8) NOT NULL,
		destination VARCHAR(8) NOT NULL,
		altitude_feet INTEGER NOT NULL,
		is_private_jet BOOLEAN NOT NULL,
		is_helicopter BOOLEAN NOT NULL,
		is_canadian_origin BOOLEAN NOT NULL,
		is_canadian_aircraft BOOLEAN NOT NULL,
		seen_at BIGINT NOT NULL,
		UNIQUE (seen_at, callsign)
	)
`

const insertQuery = `
	INSERT INTO sightings (
		callsign, aircraft_type, type_code, registration, origin, destination,
		altitude_feet, is_private_jet, is_helicopter, is_canadian_origin,
		is_canadian_aircraft, seen_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// dsn options for mysql: ?loc=UTC&parseTime=true&strict=true&timeout=1s&time_zone="+00:00"

// New opens the database named by the config and the backlog directory
// under the state path. If the directory cannot be created an error is returned
func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	path := filepath.Join(cfg.StatePath, "storage")
	// Open doesn't open a connection to validate the DSN!
	db, err := sql.Open(driverName(cfg.DatabaseDriver), cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(30 * time.Second)
	db.SetMaxIdleConns(3)
	db.SetMaxOpenConns(3)

	err = os.MkdirAll(path, 0700)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Storage{
		ctx:    ctx,
		path:   path,
		driver: cfg.DatabaseDriver,
		db:     db,
		inBuf:  map[string]Sighting{},
		insert: make(chan inData, 1),
	}

	go s.consumeData()

	return s, nil
}

func driverName(driver string) string {
	if driver == "postgres" {
		return "postgres"
	}
	return "mysql"
}

// rebind rewrites ? placeholders into the $n form postgres takes.
func rebind(driver, query string) string {
	if driver != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isDuplicate reports unique key violations, the row is in the database already.
func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// https://dev.mysql.com/doc/refman/5.7/en/server-error-reference.html
		switch me.Number {
		case 1062, 1586:
			return true
		}
		return false
	}

	var pe *pq.Error
	if errors.As(err, &pe) {
		return pe.Code == "23505"
	}
	return false
}

// TestConnection can be used to test whether the provided DSN actually works
// and to make sure the connection to the database is alive
func (s *Storage) TestConnection() error {
	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()

	return s.db.PingContext(ctx)
}

func (s *Storage) Close() error {
	s.stmtMu.Lock()
	if s.inStmt != nil {
		_ = s.inStmt.Close()
		s.inStmt = nil
	}
	s.stmtMu.Unlock()

	return s.db.Close()
}

func (s *Storage) pathFor(data Sighting) string {
	return filepath.Join(s.path, strconv.FormatInt(data.SeenAt.UnixNano(), 10))
}

// Pending is the number of sightings waiting for the database.
func (s *Storage) Pending() int {
	s.bufMu.Lock()
	defer s.bufMu.Unlock()
	return len(s.inBuf)
}

// Insert persists the Sighting to disk for resilience
// and tries to insert it into the DB.
func (s *Storage) Insert(data Sighting) {
	if data.SeenAt.IsZero() {
		panic("Sighting.SeenAt cannot be zero")
	}

	// UnixNano() is unique enough, one flight is seen per poll
	dp := s.pathFor(data)
	if err := file.Serialize(dp, &data); err != nil {
		logger.Errorf("Insert: failed persisting %v: %v", dp, err)
	}

	// the in-memory copy covers a failed persist and a full insert channel
	s.bufMu.Lock()
	if _, ok := s.inBuf[dp]; ok {
		s.bufMu.Unlock()
		logger.Warningf("Insert: %v already buffered, skipping", dp)
		return
	}
	s.inBuf[dp] = data
	s.bufMu.Unlock()

	// try to send the data up to the DB asap, on success the serialized file will be deleted
	select {
	case <-s.ctx.Done():
	case s.insert <- inData{path: dp, data: data}:
	default:
		logger.Infof("Insert: sending on storage.insert would have blocked, message buffered")
	}
}

// consumeData listens on the Storage.insert channel for things to insert.
// If successfull, it tries to remove the persisted data file.
// It regularly processes any persisted data files and tries to insert them.
func (s *Storage) consumeData() {
	t := time.NewTicker(pathProcessDurr)
	defer t.Stop()
	var cancel context.CancelFunc
	defer func() {
		if cancel != nil {
			cancel()
		}
	}()

	for {
		select {
		case <-s.ctx.Done():
			logger.Infof("consumeData: context cancelled, exiting")
			return

		case in := <-s.insert:
			err := s.dbInsert(in.data)
			if err != nil {
				// processPath and processBuf retry later
				logger.Debugf("insert of %v failed: %v", in.data.Callsign, err)
				continue
			}

			err = os.Remove(in.path)
			if err != nil && !os.IsNotExist(err) {
				// the unique key makes a reinsert harmless, removal is retried then
				logger.Errorf("Failed to remove path: %v error was: %v", in.path, err)
			}

			s.bufMu.Lock()
			delete(s.inBuf, in.path)
			s.bufMu.Unlock()

		case <-t.C:
			if cancel != nil {
				cancel()
				cancel = nil
			}
			var ctx context.Context
			ctx, cancel = context.WithCancel(s.ctx)
			go func() {
				s.processBuf(ctx)
				s.processPath(ctx)
			}()
		}
	}
}

func (s *Storage) processBuf(ctx context.Context) {
	s.bufMu.Lock()
	var toInsert []inData
	for path, data := range s.inBuf {
		toInsert = append(toInsert, inData{path: path, data: data})
	}
	s.bufMu.Unlock()

	if len(toInsert) == 0 {
		return
	}

	logger.Tracef("number of sightings buffered: %v", len(toInsert))
	for _, in := range toInsert {
		select {
		case <-ctx.Done():
			return
		case s.insert <- in:
		}
	}
}

// processPath retries inserting the persisted data in Storage.path.
func (s *Storage) processPath(ctx context.Context) {
	files, err := os.ReadDir(s.path)
	if err != nil {
		logger.Errorf("listing s.path failed (%v), skipping processing", err)
		return
	}

	logger.Tracef("number of files to insert: %v", len(files))
	for _, f := range files {
		if f.IsDir() || file.IsTemp(f.Name()) {
			continue
		}
		id := inData{
			path: filepath.Join(s.path, f.Name()),
		}

		err := file.Unserialize(id.path, &id.data)
		if err != nil {
			logger.Errorf("failed unseralizing %v, error was: %v", id.path, err)
			continue
		}

		select {
		case <-ctx.Done():
			return
		case s.insert <- id:
		}
	}
}

func (s *Storage) dbInsert(row Sighting) error {
	err := s.ensureStatement()
	if err != nil {
		return err
	}

	s.stmtMu.RLock()
	defer s.stmtMu.RUnlock()

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	// the result is irrelevant, only the error matters
	_, err = s.inStmt.ExecContext(
		ctx,
		row.Callsign,
		row.AircraftType,
		row.TypeCode,
		row.Registration,
		row.Origin,
		row.Destination,
		row.AltitudeFeet,
		row.IsPrivateJet,
		row.IsHelicopter,
		row.IsCanadianOrigin,
		row.IsCanadianAircraft,
		row.SeenAt.UnixNano(),
	)
	if err != nil && !isDuplicate(err) {
		return err
	}

	return nil
}

func (s *Storage) ensureStatement() error {
	// take read lock first to check if inStmt is nil or not
	// and if it is, take a write lock to set it
	s.stmtMu.RLock()
	if s.inStmt != nil {
		s.stmtMu.RUnlock()
		return nil
	}
	s.stmtMu.RUnlock()

	// db.Stmt is safe to use concurrently, but it is not safe
	// for us to modify the pointer pointing to it concurrently
	s.stmtMu.Lock()
	defer s.stmtMu.Unlock()
	if s.inStmt != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(s.ctx, 5*time.Second)
	defer cancel()
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}
	stmt, err := s.db.PrepareContext(ctx, rebind(s.driver, insertQuery))
	if err != nil {
		return err
	}
	s.inStmt = stmt

	return nil
}
