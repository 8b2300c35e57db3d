package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/southgenetics/inventario-api/internal/application/dto"
	"github.com/southgenetics/inventario-api/internal/application/inventory"
	"github.com/southgenetics/inventario-api/internal/domain"
	"github.com/southgenetics/inventario-api/internal/domain/entity"
	"github.com/southgenetics/inventario-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// fakeStore emula el almacén con semántica transaccional real: el TxRunner
// trabaja sobre una copia y solo la publica si el callback no retorna error.
// Así los tests pueden verificar que un fallo a mitad del flujo no deja
// movimientos huérfanos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu          sync.Mutex
	productos   map[string]*entity.Producto
	movimientos map[string]*entity.Movimiento
	alertas     map[string]*entity.Alerta
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		productos:   map[string]*entity.Producto{},
		movimientos: map[string]*entity.Movimiento{},
		alertas:     map[string]*entity.Alerta{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for k, v := range s.productos {
		p := *v
		c.productos[k] = &p
	}
	for k, v := range s.movimientos {
		m := *v
		c.movimientos[k] = &m
	}
	for k, v := range s.alertas {
		a := *v
		c.alertas[k] = &a
	}
	return c
}

func (s *fakeStore) agregarProducto(id string, stock, minimo int) {
	s.productos[id] = &entity.Producto{
		ID:          id,
		Codigo:      "SKU-" + id,
		Nombre:      "Producto " + id,
		StockActual: stock,
		StockMinimo: minimo,
		Precio:      decimal.NewFromInt(100),
		Activo:      true,
	}
}

// fakeTxRunner serializa las transacciones con un mutex (equivalente al
// bloqueo de fila) y publica la copia solo en commit.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovimientoRepository,
	productoRepo repository.ProductoRepository,
	alertaRepo repository.AlertaRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := r.store.clone()
	if err := fn(&fakeMovRepo{tx}, &fakeProductoRepo{tx}, &fakeAlertaRepo{tx}); err != nil {
		return err // rollback: la copia se descarta
	}
	r.store.productos = tx.productos
	r.store.movimientos = tx.movimientos
	r.store.alertas = tx.alertas
	return nil
}

type fakeMovRepo struct{ s *fakeStore }

func (r *fakeMovRepo) Create(m *entity.Movimiento) error {
	r.s.movimientos[m.ID] = m
	return nil
}
func (r *fakeMovRepo) GetByID(id string) (*entity.Movimiento, error) {
	return r.s.movimientos[id], nil
}
func (r *fakeMovRepo) List(dto.MovimientoFiltros, int, int) ([]*entity.Movimiento, error) {
	var out []*entity.Movimiento
	for _, m := range r.s.movimientos {
		out = append(out, m)
	}
	return out, nil
}
func (r *fakeMovRepo) Count(dto.MovimientoFiltros) (int, error) { return len(r.s.movimientos), nil }
func (r *fakeMovRepo) Delete(id string) error {
	delete(r.s.movimientos, id)
	return nil
}

type fakeProductoRepo struct{ s *fakeStore }

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.s.productos[p.ID] = p
	return nil
}
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.s.productos[id], nil
}
func (r *fakeProductoRepo) GetByCodigo(string) (*entity.Producto, error) { return nil, nil }
func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.s.productos[id], nil
}
func (r *fakeProductoRepo) UpdateStock(id string, stock int) error {
	p, ok := r.s.productos[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockActual = stock
	return nil
}
func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.s.productos[p.ID] = p
	return nil
}
func (r *fakeProductoRepo) List(dto.ProductoFiltros, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *fakeProductoRepo) Count(dto.ProductoFiltros) (int, error) { return len(r.s.productos), nil }
func (r *fakeProductoRepo) Delete(id string) error {
	delete(r.s.productos, id)
	return nil
}

type fakeAlertaRepo struct{ s *fakeStore }

func (r *fakeAlertaRepo) UpsertStockBajo(a *entity.Alerta) error {
	for _, existente := range r.s.alertas {
		if existente.ProductoID == a.ProductoID &&
			existente.Tipo == entity.AlertaStockBajo &&
			existente.Estado == entity.EstadoActiva {
			existente.Severidad = a.Severidad
			existente.Descripcion = a.Descripcion
			return nil
		}
	}
	r.s.alertas[a.ID] = a
	return nil
}
func (r *fakeAlertaRepo) GetByID(id string) (*entity.Alerta, error) { return r.s.alertas[id], nil }
func (r *fakeAlertaRepo) ListByEstado(estado string, _, _ int) ([]*entity.Alerta, error) {
	var out []*entity.Alerta
	for _, a := range r.s.alertas {
		if a.Estado == estado {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAlertaRepo) UpdateEstado(id, estado string) error {
	if a, ok := r.s.alertas[id]; ok {
		a.Estado = estado
	}
	return nil
}

func setup(t *testing.T) (*inventory.RegisterMovementUseCase, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{store: store})
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética por tipo de movimiento
// ──────────────────────────────────────────────────────────────────────────────

// Entrada: stock 50 + cantidad 20 = 70, y queda un movimiento persistido.
func TestRegistrar_EntradaSumaStock(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 50, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoEntrada, Cantidad: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, 70, store.productos["p1"].StockActual)
	require.Len(t, store.movimientos, 1)
	for _, m := range store.movimientos {
		assert.Equal(t, entity.TipoEntrada, m.Tipo)
		assert.Equal(t, 20, m.Cantidad)
		assert.Equal(t, "p1", m.ProductoID)
	}
}

// Salida con stock suficiente: 50 - 20 = 30.
func TestRegistrar_SalidaRestaStock(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 50, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, store.productos["p1"].StockActual)
}

// Transferencia usa la misma aritmética que salida: 100 - 40 = 60.
func TestRegistrar_TransferenciaRestaComoSalida(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p4", 100, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p4", Tipo: entity.TipoTransferencia, Cantidad: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, store.productos["p4"].StockActual)
}

// Ajuste fija el stock al valor absoluto: stock 30, ajuste 12 → 12 (no 42).
func TestRegistrar_AjusteFijaValorAbsoluto(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p3", 30, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p3", Tipo: entity.TipoAjuste, Cantidad: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, store.productos["p3"].StockActual)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente
// ──────────────────────────────────────────────────────────────────────────────

// Salida mayor al stock: falla con InsufficientStockError que lleva el stock
// disponible y la cantidad solicitada; el stock no cambia y la transacción se
// revierte completa, así que tampoco queda el movimiento registrado.
func TestRegistrar_SalidaInsuficiente(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p2", 5, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p2", Tipo: entity.TipoSalida, Cantidad: 10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insuf *domain.InsufficientStockError
	require.ErrorAs(t, err, &insuf)
	assert.Equal(t, 5, insuf.StockActual)
	assert.Equal(t, 10, insuf.Solicitada)

	assert.Equal(t, 5, store.productos["p2"].StockActual, "el stock no debe cambiar")
	assert.Empty(t, store.movimientos, "el movimiento debe revertirse junto con el stock")
}

// Salida exacta al stock disponible: permitida, el stock queda en cero.
func TestRegistrar_SalidaDejaStockEnCero(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 10, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, store.productos["p1"].StockActual)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de entrada (antes de cualquier escritura)
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar_CantidadInvalida(t *testing.T) {
	casos := []struct {
		nombre   string
		cantidad string
	}{
		{"negativa", "-5"},
		{"cero", "0"},
		{"no numérica", "abc"},
		{"vacía", ""},
		{"decimal", "3.5"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			uc, store := setup(t)
			store.agregarProducto("p1", 50, 0)

			err := uc.RegistrarDesdeRequest(context.Background(), "tester", dto.RegistrarMovimientoRequest{
				ProductoID: "p1", Tipo: "entrada", Cantidad: c.cantidad,
			})
			assert.ErrorIs(t, err, domain.ErrCantidadInvalida)
			assert.Empty(t, store.movimientos, "no debe escribirse ningún movimiento")
			assert.Equal(t, 50, store.productos["p1"].StockActual)
		})
	}
}

// Tipo fuera del enum: rama defensiva, se rechaza sin persistir nada.
func TestRegistrar_TipoInvalido(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 50, 0)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: "devolucion", Cantidad: 5,
	})
	assert.ErrorIs(t, err, domain.ErrTipoInvalido)
	assert.Empty(t, store.movimientos)
}

// Producto inexistente: ErrNotFound y el movimiento insertado se revierte.
func TestRegistrar_ProductoInexistente(t *testing.T) {
	uc, store := setup(t)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "no-existe", Tipo: entity.TipoEntrada, Cantidad: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, store.movimientos)
}

// ──────────────────────────────────────────────────────────────────────────────
// No idempotencia y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

// Dos llamadas idénticas producen dos movimientos y dos deltas secuenciales.
func TestRegistrar_NoEsIdempotente(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 50, 0)

	in := inventory.MovimientoInput{ProductoID: "p1", Tipo: entity.TipoEntrada, Cantidad: 20}
	require.NoError(t, uc.Registrar(context.Background(), in))
	require.NoError(t, uc.Registrar(context.Background(), in))

	assert.Equal(t, 90, store.productos["p1"].StockActual)
	assert.Len(t, store.movimientos, 2)
}

// Movimientos concurrentes sobre el mismo producto no pierden actualizaciones:
// el bloqueo de fila serializa lectura y escritura del stock.
func TestRegistrar_SalidasConcurrentesNoPierdenActualizaciones(t *testing.T) {
	uc, store := setup(t)
	const n = 20
	store.agregarProducto("p1", n, 0)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := uc.Registrar(context.Background(), inventory.MovimientoInput{
				ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 1,
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, store.productos["p1"].StockActual)
	assert.Len(t, store.movimientos, n)
}

// Con stock para la mitad de las salidas, exactamente la mitad debe fallar con
// stock insuficiente y el resto aplicarse; nunca queda stock negativo.
func TestRegistrar_SalidasConcurrentesConStockLimitado(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 10, 0)

	var fallos int32
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := uc.Registrar(context.Background(), inventory.MovimientoInput{
				ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 1,
			})
			if err != nil {
				if !errors.Is(err, domain.ErrInsufficientStock) {
					t.Errorf("error inesperado: %v", err)
				}
				mu.Lock()
				fallos++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), fallos)
	assert.Equal(t, 0, store.productos["p1"].StockActual)
	assert.Len(t, store.movimientos, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

// Una salida que deja el stock en o bajo el mínimo genera una alerta activa.
func TestRegistrar_GeneraAlertaStockBajo(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 15, 10)

	err := uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 7,
	})
	require.NoError(t, err)

	require.Len(t, store.alertas, 1)
	for _, a := range store.alertas {
		assert.Equal(t, entity.AlertaStockBajo, a.Tipo)
		assert.Equal(t, entity.EstadoActiva, a.Estado)
		assert.Equal(t, entity.SeveridadAlta, a.Severidad)
	}
}

// Si el stock llega a cero la alerta se marca crítica, y se reutiliza la
// alerta activa existente en lugar de crear otra.
func TestRegistrar_AlertaCriticaConStockCero(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 10, 10)

	require.NoError(t, uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 5,
	}))
	require.NoError(t, uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoSalida, Cantidad: 5,
	}))

	require.Len(t, store.alertas, 1, "debe actualizarse la alerta activa, no duplicarse")
	for _, a := range store.alertas {
		assert.Equal(t, entity.SeveridadCritica, a.Severidad)
	}
}

// Una entrada que deja el stock sobre el mínimo no genera alerta.
func TestRegistrar_EntradaNoGeneraAlerta(t *testing.T) {
	uc, store := setup(t)
	store.agregarProducto("p1", 20, 10)

	require.NoError(t, uc.Registrar(context.Background(), inventory.MovimientoInput{
		ProductoID: "p1", Tipo: entity.TipoEntrada, Cantidad: 5,
	}))
	assert.Empty(t, store.alertas)
}
