// Package cache implementa la caché de entidades y su sincronización.
//
// Cada entrada se identifica por una clave (tipo de entidad + id opcional)
// y sigue la máquina de estados Idle -> Loading -> {Ready, Error}; ningún
// estado es terminal: una nueva lectura puede reentrar desde Ready o Error.
// Políticas:
//   - lectura: servir lo cacheado si está Ready (stale-while-revalidate
//     opcional); una sola petición en vuelo por clave y las lecturas
//     concurrentes se adhieren a la existente;
//   - escritura: los casos de uso reconcilian vía Invalidate (relectura
//     forzada), Set (reemplazo con el registro del servidor) o Patch
//     (edición directa, solo para operaciones seguras por identidad).
//
// La caché es una proyección descartable del backend, nunca autoritativa,
// y solo la muta este paquete: las vistas no tocan el mapa directamente.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/gestion-cli/pkg/logger"
)

// Status estado de una entrada de caché.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Key identifica una entrada: tipo de entidad más id opcional (vacío para
// listados o recursos únicos como el perfil).
type Key struct {
	Kind string
	ID   string
}

func (k Key) String() string {
	if k.ID == "" {
		return k.Kind
	}
	return k.Kind + "/" + k.ID
}

// Entry instantánea del estado de una clave, tal como se entrega a las vistas.
type Entry struct {
	Key       Key
	Data      interface{} // nil hasta la primera carga exitosa; puede ser un puntero nil tipado (perfil ausente)
	FetchedAt time.Time
	Status    Status
	Err       error // solo con Status == StatusError
}

// FetchFunc resuelve el valor de una clave contra el gateway.
// El punto de suspensión es exactamente la llamada de red.
type FetchFunc func(ctx context.Context) (interface{}, error)

// slot estado interno mutable de una clave.
type slot struct {
	entry    Entry
	stale    bool          // invalidada: la próxima lectura refetchea aunque esté Ready
	inflight chan struct{} // cerrado al terminar el fetch en vuelo; nil si no hay
	subs     map[int]chan Entry
}

// broadcastLocked entrega la entrada actual a los suscriptores sin bloquear:
// un suscriptor que ya no drena su canal simplemente no recibe la
// actualización (no hay token de cancelación hacia la red).
func (sl *slot) broadcastLocked() {
	for _, ch := range sl.subs {
		select {
		case ch <- sl.entry:
		default:
		}
	}
}

// Store caché en memoria con deduplicación de lecturas en vuelo.
//
// Se construye explícitamente al arrancar la aplicación y se desmonta con
// Reset al cerrar sesión; no es un singleton de paquete. A diferencia del
// event loop cooperativo de un navegador, aquí puede haber goroutines
// concurrentes, así que un mutex del store protege todo el mapa.
type Store struct {
	mu      sync.Mutex
	slots   map[Key]*slot
	log     *logger.Logger
	nextSub int
}

// NewStore construye la caché vacía.
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{slots: map[Key]*slot{}, log: log}
}

func (s *Store) slotLocked(key Key) *slot {
	sl, ok := s.slots[key]
	if !ok {
		sl = &slot{
			entry: Entry{Key: key, Status: StatusIdle},
			subs:  map[int]chan Entry{},
		}
		s.slots[key] = sl
	}
	return sl
}

// Snapshot devuelve el estado actual de la clave sin disparar lecturas.
func (s *Store) Snapshot(key Key) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := s.slots[key]; ok {
		return sl.entry
	}
	return Entry{Key: key, Status: StatusIdle}
}

// Subscribe vincula una vista a la clave: devuelve la entrada actual, un
// canal de actualizaciones futuras y la función para desuscribirse.
func (s *Store) Subscribe(key Key) (Entry, <-chan Entry, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.slotLocked(key)
	id := s.nextSub
	s.nextSub++
	ch := make(chan Entry, 8)
	sl.subs[id] = ch
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if cur, ok := s.slots[key]; ok {
			if c, ok := cur.subs[id]; ok {
				delete(cur.subs, id)
				close(c)
			}
		}
	}
	return sl.entry, ch, cancel
}

// ReadOption opciones de lectura.
type ReadOption func(*readOptions)

type readOptions struct {
	revalidate bool
}

// WithRevalidate sirve la entrada cacheada de inmediato y dispara además
// una recarga silenciosa en segundo plano (stale-while-revalidate).
func WithRevalidate() ReadOption {
	return func(o *readOptions) { o.revalidate = true }
}

// Read resuelve la clave según la política de lectura:
//   - Ready y no invalidada: se devuelve de inmediato (con revalidación en
//     segundo plano si se pidió);
//   - Loading: la lectura se adhiere a la petición en vuelo en lugar de
//     duplicarla;
//   - Idle, Error o invalidada: se emite una única llamada al gateway y se
//     espera su resultado.
//
// Si el fetch falla, la entrada queda en Error y Read devuelve ese error;
// los datos previos se conservan para servir stale en lecturas siguientes.
func (s *Store) Read(ctx context.Context, key Key, fetch FetchFunc, opts ...ReadOption) (Entry, error) {
	var o readOptions
	for _, fn := range opts {
		fn(&o)
	}

	s.mu.Lock()
	sl := s.slotLocked(key)

	if sl.inflight != nil {
		done := sl.inflight
		s.mu.Unlock()
		return s.await(ctx, key, done)
	}

	if sl.entry.Status == StatusReady && !sl.stale {
		entry := sl.entry
		if o.revalidate {
			s.startFetchLocked(key, sl, fetch)
		}
		s.mu.Unlock()
		return entry, nil
	}

	done := s.startFetchLocked(key, sl, fetch)
	s.mu.Unlock()
	return s.await(ctx, key, done)
}

// await espera el fin del fetch en vuelo. Si el contexto del lector se
// cancela antes, este lector deja de esperar pero la petición sigue su
// curso y resolverá la entrada para el resto.
func (s *Store) await(ctx context.Context, key Key, done <-chan struct{}) (Entry, error) {
	select {
	case <-done:
	case <-ctx.Done():
		return s.Snapshot(key), ctx.Err()
	}
	e := s.Snapshot(key)
	if e.Status == StatusError {
		return e, e.Err
	}
	return e, nil
}

// startFetchLocked transiciona a Loading y lanza el fetch. Devuelve el canal
// que se cierra al completar. Requiere s.mu tomado.
func (s *Store) startFetchLocked(key Key, sl *slot, fetch FetchFunc) chan struct{} {
	done := make(chan struct{})
	sl.inflight = done
	sl.entry.Status = StatusLoading
	sl.entry.Err = nil
	sl.broadcastLocked()

	go func() {
		defer close(done)
		// El fetch no hereda el contexto de quien lo inició: las lecturas
		// adheridas siguen esperando el resultado aunque aquel se cancele.
		data, err := fetch(context.Background())

		s.mu.Lock()
		defer s.mu.Unlock()
		cur, ok := s.slots[key]
		if !ok || cur.inflight != done {
			// Reset durante el vuelo: el resultado ya no tiene dónde vivir.
			s.log.Debug().Str("key", key.String()).Msg("cache: resultado descartado tras reset")
			return
		}
		cur.inflight = nil
		if err != nil {
			cur.entry.Status = StatusError
			cur.entry.Err = err
			s.log.Debug().Str("key", key.String()).Err(err).Msg("cache: fetch falló")
		} else {
			cur.entry = Entry{Key: key, Data: data, FetchedAt: time.Now(), Status: StatusReady}
			cur.stale = false
			s.log.Trace().Str("key", key.String()).Msg("cache: entrada actualizada")
		}
		cur.broadcastLocked()
	}()
	return done
}

// Invalidate marca la clave como stale: la próxima lectura refetchea del
// gateway aunque la entrada siga Ready. No crea entradas nuevas.
func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sl, ok := s.slots[key]; ok {
		sl.stale = true
		s.log.Trace().Str("key", key.String()).Msg("cache: invalidada")
	}
}

// Set reemplaza los datos de la clave con el registro devuelto por el
// servidor y la deja Ready. Crea la entrada si no existía.
func (s *Store) Set(key Key, data interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := s.slotLocked(key)
	sl.entry = Entry{Key: key, Data: data, FetchedAt: time.Now(), Status: StatusReady}
	sl.stale = false
	sl.broadcastLocked()
}

// Patch edita en el lugar los datos de una entrada Ready (ej. quitar un id
// eliminado de la lista cacheada) sin refetch. Si la clave no está cargada
// no hay nada que parchear y la próxima lectura traerá el estado real.
func (s *Store) Patch(key Key, apply func(data interface{}) interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[key]
	if !ok || sl.entry.Status != StatusReady {
		return
	}
	sl.entry.Data = apply(sl.entry.Data)
	sl.broadcastLocked()
}

// Drop elimina la entrada por completo (ej. el detalle de un cliente
// borrado). Los suscriptores de la clave quedan cerrados.
func (s *Store) Drop(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[key]
	if !ok {
		return
	}
	for id, ch := range sl.subs {
		delete(sl.subs, id)
		close(ch)
	}
	delete(s.slots, key)
}

// Reset vacía la caché entera y cierra todas las suscripciones. Se invoca
// al cerrar sesión: la proyección cacheada pertenece a la sesión.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, sl := range s.slots {
		for id, ch := range sl.subs {
			delete(sl.subs, id)
			close(ch)
		}
		delete(s.slots, key)
	}
	s.log.Debug().Msg("cache: reset")
}
