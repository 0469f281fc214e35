package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-fabrica/internal/application/inventory"
	"github.com/tu-usuario/inventario-fabrica/internal/domain"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/almacen"
	"github.com/tu-usuario/inventario-fabrica/internal/domain/entity"
	"github.com/tu-usuario/inventario-fabrica/pkg/logger"
)

func producto(codigoSistema, corto string, stock map[string]int) *entity.Product {
	return &entity.Product{
		CodigoSistema: codigoSistema,
		Codigo:        corto,
		Stock:         stock,
	}
}

func nuevoMotor(repo *fakeProductRepo) *inventory.MovementUseCase {
	return inventory.NewMovementUseCase(repo, logger.Nop())
}

// ──────────────────────────────────────────────────────────────────────────────
// Entrada y salida
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrarEntrada(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.PorPulir: 10}))
	uc := nuevoMotor(repo)
	ctx := context.Background()

	require.NoError(t, uc.RegistrarEntrada(ctx, "FR-9304", 5, "POR PULIR"))
	assert.Equal(t, 15, repo.products[0].Stock[almacen.PorPulir])

	// alias de almacén y código corto
	require.NoError(t, uc.RegistrarEntrada(ctx, "9304", 3, "pulir"))
	assert.Equal(t, 18, repo.products[0].Stock[almacen.PorPulir])
}

func TestRegistrarSalida(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.Terminado: 8}))
	uc := nuevoMotor(repo)

	require.NoError(t, uc.RegistrarSalida(context.Background(), "FR-9304", 8, "P. TERMINADO"))
	assert.Equal(t, 0, repo.products[0].Stock[almacen.Terminado])
}

func TestSalidaStockInsuficiente(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.Terminado: 5}))
	uc := nuevoMotor(repo)

	err := uc.RegistrarSalida(context.Background(), "FR-9304", 10, "P. TERMINADO")

	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, 5, insuf.Disponible)
	assert.Equal(t, 10, insuf.Solicitado)
	assert.Equal(t, almacen.Terminado, insuf.Almacen)

	// sin escritura: el stock queda intacto
	assert.Equal(t, 5, repo.products[0].Stock[almacen.Terminado])
	assert.Zero(t, repo.setStockCalls)
}

func TestMovimientosValidacion(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.PorPulir: 10}))
	uc := nuevoMotor(repo)
	ctx := context.Background()

	// las precondiciones fallan antes de tocar el repositorio
	assert.ErrorIs(t, uc.RegistrarEntrada(ctx, "FR-9304", 0, "POR PULIR"), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, uc.RegistrarEntrada(ctx, "FR-9304", -3, "POR PULIR"), domain.ErrCantidadInvalida)
	assert.ErrorIs(t, uc.RegistrarSalida(ctx, "FR-9304", 1, "BODEGA CENTRAL"), domain.ErrAlmacenInvalido)
	assert.ErrorIs(t, uc.MoverEntreAlmacenes(ctx, "FR-9304", 1, "POR PULIR", "P TERMINADO"), domain.ErrAlmacenInvalido)
	assert.Zero(t, repo.setStockCalls)

	assert.ErrorIs(t, uc.RegistrarEntrada(ctx, "NO-EXISTE", 1, "POR PULIR"), domain.ErrProductoNoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslados y compensación
// ──────────────────────────────────────────────────────────────────────────────

func TestMoverEntreAlmacenes(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{
		almacen.PorPulir:  10,
		almacen.Terminado: 2,
	}))
	uc := nuevoMotor(repo)

	require.NoError(t, uc.MoverEntreAlmacenes(context.Background(), "FR-9304", 4, "POR PULIR", "P. TERMINADO"))
	assert.Equal(t, 6, repo.products[0].Stock[almacen.PorPulir])
	assert.Equal(t, 6, repo.products[0].Stock[almacen.Terminado])
}

func TestMoverOrigenInsuficiente(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.PorPulir: 3}))
	uc := nuevoMotor(repo)

	err := uc.MoverEntreAlmacenes(context.Background(), "FR-9304", 4, "POR PULIR", "P. TERMINADO")

	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, 3, repo.products[0].Stock[almacen.PorPulir])
	assert.Zero(t, repo.products[0].Stock[almacen.Terminado])
}

func TestMoverCompensaEntradaFallida(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.PorPulir: 10}))
	falloRemoto := errors.New("escritura rechazada")
	// la escritura en destino falla, la compensación en origen pasa
	repo.setStockErr = func(_, alm string, _ int) error {
		if alm == almacen.Terminado {
			return falloRemoto
		}
		return nil
	}
	uc := nuevoMotor(repo)

	err := uc.MoverEntreAlmacenes(context.Background(), "FR-9304", 4, "POR PULIR", "P. TERMINADO")

	var transfer *domain.TransferFailedError
	require.True(t, errors.As(err, &transfer))
	assert.ErrorIs(t, transfer.Inbound, falloRemoto)

	// el origen quedó restaurado
	assert.Equal(t, 10, repo.products[0].Stock[almacen.PorPulir])
	assert.Zero(t, repo.products[0].Stock[almacen.Terminado])
}

func TestMoverCompensacionFallida(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.PorPulir: 10}))
	falloRemoto := errors.New("escritura rechazada")
	escrituras := 0
	// la primera escritura (salida en origen) pasa; todo lo demás falla
	repo.setStockErr = func(_, _ string, _ int) error {
		escrituras++
		if escrituras > 1 {
			return falloRemoto
		}
		return nil
	}
	uc := nuevoMotor(repo)

	err := uc.MoverEntreAlmacenes(context.Background(), "FR-9304", 4, "POR PULIR", "P. TERMINADO")

	var comp *domain.CompensationFailedError
	require.True(t, errors.As(err, &comp))
	assert.Equal(t, "FR-9304", comp.Codigo)
	assert.Equal(t, almacen.PorPulir, comp.Origen)
	assert.Equal(t, 4, comp.Cantidad)

	// el origen quedó corto: el error lo dice para que un operador corrija a mano
	assert.Equal(t, 6, repo.products[0].Stock[almacen.PorPulir])
}

// Flujo completo de planta: entrada de producción, traslado a terminado y un
// despacho que excede lo disponible.
func TestFlujoDeProduccion(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{}))
	uc := nuevoMotor(repo)
	ctx := context.Background()

	require.NoError(t, uc.RegistrarEntrada(ctx, "FR-9304", 50, "POR PULIR"))
	require.NoError(t, uc.MoverEntreAlmacenes(ctx, "FR-9304", 20, "POR PULIR", "P. TERMINADO"))

	err := uc.RegistrarSalida(ctx, "FR-9304", 40, "P. TERMINADO")
	var insuf *domain.InsufficientStockError
	require.True(t, errors.As(err, &insuf))
	assert.Equal(t, 20, insuf.Disponible)

	assert.Equal(t, 30, repo.products[0].Stock[almacen.PorPulir])
	assert.Equal(t, 20, repo.products[0].Stock[almacen.Terminado])
}

// Movimientos concurrentes sobre el mismo producto no pierden actualizaciones.
func TestEntradasConcurrentes(t *testing.T) {
	repo := newFakeProductRepo(producto("FR-9304", "9304", map[string]int{almacen.PorPulir: 0}))
	uc := nuevoMotor(repo)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		// mezcla de código de sistema y código corto: serializan entre sí
		codigo := "FR-9304"
		if i%2 == 0 {
			codigo = "9304"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, uc.RegistrarEntrada(context.Background(), codigo, 1, "POR PULIR"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, repo.products[0].Stock[almacen.PorPulir])
}
