// Package registro implementa el caso de uso de la constancia de registro:
// el comprobante PDF que la cuenta puede descargar una vez que su registro
// está mecánicamente completo.
package registro

import (
	"context"
	"fmt"
	"time"

	"github.com/vecindo/registro-api/internal/application/flow"
	"github.com/vecindo/registro-api/internal/domain"
	"github.com/vecindo/registro-api/internal/domain/entity"
	flowdom "github.com/vecindo/registro-api/internal/domain/flow"
	"github.com/vecindo/registro-api/internal/domain/repository"
)

// ConstanciaData datos que alimentan la constancia.
type ConstanciaData struct {
	Account    *entity.Account
	Business   *entity.Business // nil para cuentas client
	Address    *entity.Address  // nil si el cliente omitió la dirección
	Branch     *entity.Branch   // nil para cuentas client
	Folio      string
	Verificada bool
	EmitidaEn  time.Time
}

// ConstanciaPDFGenerator puerto de salida para el render del PDF.
type ConstanciaPDFGenerator interface {
	GenerateConstanciaPDF(ctx context.Context, data *ConstanciaData) ([]byte, error)
}

// ConstanciaUseCase arma los datos de la constancia y delega el render.
type ConstanciaUseCase struct {
	accounts   repository.AccountRepository
	businesses repository.BusinessRepository
	addresses  repository.AddressRepository
	snapshots  flow.SnapshotSource
	generator  ConstanciaPDFGenerator
	now        func() time.Time
}

// NewConstanciaUseCase construye el caso de uso.
func NewConstanciaUseCase(
	accounts repository.AccountRepository,
	businesses repository.BusinessRepository,
	addresses repository.AddressRepository,
	snapshots flow.SnapshotSource,
	generator ConstanciaPDFGenerator,
) *ConstanciaUseCase {
	return &ConstanciaUseCase{
		accounts:   accounts,
		businesses: businesses,
		addresses:  addresses,
		snapshots:  snapshots,
		generator:  generator,
		now:        time.Now,
	}
}

// Generate produce el PDF de la constancia. Solo está disponible cuando el
// registro está mecánicamente completo (el resolver ya no pide ningún paso
// de registro); antes de eso devuelve ErrRegistroIncompleto.
func (uc *ConstanciaUseCase) Generate(ctx context.Context, accountID string) ([]byte, error) {
	snap, err := uc.snapshots.Fetch(accountID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !registroCompleto(snap) {
		return nil, domain.ErrRegistroIncompleto
	}

	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrAccountNotFound
	}

	data := &ConstanciaData{
		Account:    account,
		Folio:      folio(account, uc.now()),
		Verificada: account.VerificationStatus == entity.VerificationVerified,
		EmitidaEn:  uc.now(),
	}
	if data.Address, err = uc.addresses.GetByAccount(accountID); err != nil {
		return nil, err
	}
	if account.Role == entity.RoleBusiness {
		if data.Business, err = uc.businesses.GetByAccount(accountID); err != nil {
			return nil, err
		}
		if data.Branch, err = uc.addresses.GetBranchByAccount(accountID); err != nil {
			return nil, err
		}
	}

	return uc.generator.GenerateConstanciaPDF(ctx, data)
}

// registroCompleto: el resolver ya pasó todos los pasos de registro. Con
// acceso concedido siempre es cierto; sin acceso, solo cuando el paso
// resuelto es Pending.
func registroCompleto(snap *entity.Snapshot) bool {
	if snap.AccessGranted {
		return true
	}
	return flowdom.Resolve(snap) == flowdom.StepPending
}

// folio identificador legible de la constancia: prefijo por rol + fragmento
// del ID de cuenta + fecha de emisión.
func folio(a *entity.Account, emitida time.Time) string {
	prefijo := "CL"
	if a.Role == entity.RoleBusiness {
		prefijo = "NG"
	}
	id := a.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("REG-%s-%s-%s", prefijo, id, emitida.Format("20060102"))
}
