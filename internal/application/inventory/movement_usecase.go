package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/almacen"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
	domInv "github.com/tu-usuario/inventario-fabrica/internal/domain/inventory"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/repository"
	"github.com/tu-usuario/inventario-fabrica/pkg/logger"
)

// MovementUseCase es el motor de movimientos: entrada, salida y traslado entre
// almacenes. Cada operación valida, lee el stock actual, calcula y escribe.
// Los movimientos que compiten por el mismo producto se serializan con un lock
// por código canónico: sin él, dos salidas concurrentes pueden leer el mismo
// stock y la segunda escritura pisa a la primera.
type MovementUseCase struct {
	products repository.ProductRepository
	log      *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewMovementUseCase construye el motor.
func NewMovementUseCase(products repository.ProductRepository, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{
		products: products,
		log:      log,
		locks:    make(map[string]*sync.Mutex),
	}
}

// RegistrarEntrada suma cantidad al stock del producto en el almacén indicado.
// Falla antes de mutar nada con ErrCantidadInvalida o ErrAlmacenInvalido.
func (uc *MovementUseCase) RegistrarEntrada(ctx context.Context, codigo string, cantidad int, nombreAlmacen string) error {
	if err := validar(cantidad, nombreAlmacen); err != nil {
		return err
	}
	l := uc.lockFor(codigo)
	l.Lock()
	defer l.Unlock()

	m := entity.Movement{
		ID:       uuid.New().String(),
		Codigo:   codigo,
		Cantidad: cantidad,
		Tipo:     entity.MovementTypeIN,
		Destino:  almacen.Normalize(nombreAlmacen),
	}
	return uc.entrada(ctx, m, m.Destino)
}

// RegistrarSalida resta cantidad del stock del producto en el almacén indicado.
// Si el stock actual no alcanza devuelve InsufficientStockError sin escribir.
func (uc *MovementUseCase) RegistrarSalida(ctx context.Context, codigo string, cantidad int, nombreAlmacen string) error {
	if err := validar(cantidad, nombreAlmacen); err != nil {
		return err
	}
	l := uc.lockFor(codigo)
	l.Lock()
	defer l.Unlock()

	m := entity.Movement{
		ID:       uuid.New().String(),
		Codigo:   codigo,
		Cantidad: cantidad,
		Tipo:     entity.MovementTypeOUT,
		Origen:   almacen.Normalize(nombreAlmacen),
	}
	return uc.salida(ctx, m, m.Origen)
}

// MoverEntreAlmacenes ejecuta salida en origen y entrada en destino. Si la salida
// falla no cambia nada. Si la entrada falla tras descontar el origen, emite una
// entrada compensatoria que restaura el origen y devuelve TransferFailedError;
// si la compensación también falla, el origen queda corto y se devuelve
// CompensationFailedError para que un operador intervenga.
func (uc *MovementUseCase) MoverEntreAlmacenes(ctx context.Context, codigo string, cantidad int, origen, destino string) error {
	if cantidad <= 0 {
		return domain.ErrCantidadInvalida
	}
	if !almacen.IsValid(origen) || !almacen.IsValid(destino) {
		return domain.ErrAlmacenInvalido
	}

	// Un solo lock para todo el traslado: la compensación debe ver el mismo
	// estado que dejó la salida.
	l := uc.lockFor(codigo)
	l.Lock()
	defer l.Unlock()

	m := entity.Movement{
		ID:       uuid.New().String(),
		Codigo:   codigo,
		Cantidad: cantidad,
		Tipo:     entity.MovementTypeTRANSFER,
		Origen:   almacen.Normalize(origen),
		Destino:  almacen.Normalize(destino),
	}

	if err := uc.salida(ctx, m, m.Origen); err != nil {
		return err
	}
	inErr := uc.entrada(ctx, m, m.Destino)
	if inErr == nil {
		return nil
	}

	// Compensación: devolver lo descontado al origen.
	if compErr := uc.entrada(ctx, m, m.Origen); compErr != nil {
		uc.log.Error().
			Str("op", m.ID).
			Str("tipo", m.Tipo).
			Str("codigo", m.Codigo).
			Str("origen", m.Origen).
			Int("cantidad", m.Cantidad).
			Err(compErr).
			Msg("compensación fallida: el origen quedó corto")
		return &domain.CompensationFailedError{
			Codigo:       m.Codigo,
			Origen:       m.Origen,
			Cantidad:     m.Cantidad,
			Inbound:      inErr,
			Compensation: compErr,
		}
	}
	uc.log.Warn().
		Str("op", m.ID).
		Str("tipo", m.Tipo).
		Str("codigo", m.Codigo).
		Str("destino", m.Destino).
		Err(inErr).
		Msg("entrada en destino fallida; origen restaurado")
	return &domain.TransferFailedError{Inbound: inErr}
}

// entrada lee, suma y escribe en canon. El caller ya validó y tiene el lock del
// producto; canon puede ser el destino del movimiento o, en una compensación, su origen.
func (uc *MovementUseCase) entrada(ctx context.Context, m entity.Movement, canon string) error {
	actual, err := uc.products.GetStock(ctx, m.Codigo, canon)
	if err != nil {
		return err
	}
	if err := uc.products.SetStock(ctx, m.Codigo, canon, actual+m.Cantidad); err != nil {
		return err
	}
	uc.log.Info().
		Str("op", m.ID).
		Str("tipo", m.Tipo).
		Str("codigo", m.Codigo).
		Str("almacen", canon).
		Int("cantidad", m.Cantidad).
		Int("stock", actual+m.Cantidad).
		Msg("entrada registrada")
	return nil
}

// salida lee, verifica suficiencia, resta y escribe. Caller valida y tiene el lock.
func (uc *MovementUseCase) salida(ctx context.Context, m entity.Movement, canon string) error {
	actual, err := uc.products.GetStock(ctx, m.Codigo, canon)
	if err != nil {
		return err
	}
	if actual < m.Cantidad {
		return &domain.InsufficientStockError{
			Codigo:     m.Codigo,
			Almacen:    canon,
			Disponible: actual,
			Solicitado: m.Cantidad,
		}
	}
	if err := uc.products.SetStock(ctx, m.Codigo, canon, actual-m.Cantidad); err != nil {
		return err
	}
	uc.log.Info().
		Str("op", m.ID).
		Str("tipo", m.Tipo).
		Str("codigo", m.Codigo).
		Str("almacen", canon).
		Int("cantidad", m.Cantidad).
		Int("stock", actual-m.Cantidad).
		Msg("salida registrada")
	return nil
}

// validar aplica las precondiciones comunes de entrada y salida.
func validar(cantidad int, nombreAlmacen string) error {
	if cantidad <= 0 {
		return domain.ErrCantidadInvalida
	}
	if !almacen.IsValid(nombreAlmacen) {
		return domain.ErrAlmacenInvalido
	}
	return nil
}

// lockFor devuelve el mutex del producto, creándolo la primera vez. La clave es
// el código normalizado para que "FR-9304" y "9304" serialicen entre sí.
func (uc *MovementUseCase) lockFor(codigo string) *sync.Mutex {
	key := domInv.NormalizeCode(codigo)
	uc.mu.Lock()
	defer uc.mu.Unlock()
	l, ok := uc.locks[key]
	if !ok {
		l = &sync.Mutex{}
		uc.locks[key] = l
	}
	return l
}
