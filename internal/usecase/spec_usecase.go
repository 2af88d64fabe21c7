package usecase

import (
	"context"
	"net/http"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

// RAM/ROMオプションは整数の容量(GB)のみ持つ。
// 2つのusecaseは書き込み先テーブルが違うだけ。

type RamUsecase struct {
	rams  repo.RamRepository
	cfg   config.Config
	clock Clock
}

// DI
func NewRamUsecase(rams repo.RamRepository, cfg config.Config, clock Clock) *RamUsecase {
	return &RamUsecase{rams: rams, cfg: cfg, clock: clock}
}

type SpecInput struct {
	Name int
}

func (u *RamUsecase) List(ctx context.Context, in ConditionInput) (repo.Page[model.Ram], error) {
	cond, err := parseCondition(in, model.RamSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return repo.Page[model.Ram]{}, err
	}

	page, err := u.rams.List(ctx, cond)
	if err != nil {
		return repo.Page[model.Ram]{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page, nil
}

// Export は条件に合うRAMオプションをページネーションなしで全件返す。
func (u *RamUsecase) Export(ctx context.Context, in ConditionInput) ([]model.Ram, error) {
	cond, err := parseCondition(in, model.RamSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return nil, err
	}
	cond.PerPage = 0

	page, err := u.rams.List(ctx, cond)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page.Items, nil
}

func (u *RamUsecase) Create(ctx context.Context, in SpecInput) (model.Ram, error) {
	if in.Name <= 0 {
		return model.Ram{}, NewValidationError(map[string]string{"name": "name must be a positive capacity"})
	}

	r, err := u.rams.Create(ctx, model.Ram{Name: in.Name})
	if err != nil {
		return model.Ram{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

func (u *RamUsecase) Get(ctx context.Context, id int64) (model.Ram, error) {
	r, err := u.rams.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Ram{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Ram{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

func (u *RamUsecase) Update(ctx context.Context, id int64, in SpecInput) (model.Ram, error) {
	if in.Name <= 0 {
		return model.Ram{}, NewValidationError(map[string]string{"name": "name must be a positive capacity"})
	}

	r, err := u.Get(ctx, id)
	if err != nil {
		return model.Ram{}, err
	}
	r.Name = in.Name

	if err := u.rams.Update(ctx, r); err != nil {
		if err == repo.ErrNotFound {
			return model.Ram{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Ram{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

func (u *RamUsecase) Delete(ctx context.Context, id int64) error {
	err := u.rams.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

type RomUsecase struct {
	roms  repo.RomRepository
	cfg   config.Config
	clock Clock
}

// DI
func NewRomUsecase(roms repo.RomRepository, cfg config.Config, clock Clock) *RomUsecase {
	return &RomUsecase{roms: roms, cfg: cfg, clock: clock}
}

func (u *RomUsecase) List(ctx context.Context, in ConditionInput) (repo.Page[model.Rom], error) {
	cond, err := parseCondition(in, model.RomSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return repo.Page[model.Rom]{}, err
	}

	page, err := u.roms.List(ctx, cond)
	if err != nil {
		return repo.Page[model.Rom]{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page, nil
}

// Export は条件に合うROMオプションをページネーションなしで全件返す。
func (u *RomUsecase) Export(ctx context.Context, in ConditionInput) ([]model.Rom, error) {
	cond, err := parseCondition(in, model.RomSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return nil, err
	}
	cond.PerPage = 0

	page, err := u.roms.List(ctx, cond)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page.Items, nil
}

func (u *RomUsecase) Create(ctx context.Context, in SpecInput) (model.Rom, error) {
	if in.Name <= 0 {
		return model.Rom{}, NewValidationError(map[string]string{"name": "name must be a positive capacity"})
	}

	r, err := u.roms.Create(ctx, model.Rom{Name: in.Name})
	if err != nil {
		return model.Rom{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

func (u *RomUsecase) Get(ctx context.Context, id int64) (model.Rom, error) {
	r, err := u.roms.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Rom{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Rom{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

func (u *RomUsecase) Update(ctx context.Context, id int64, in SpecInput) (model.Rom, error) {
	if in.Name <= 0 {
		return model.Rom{}, NewValidationError(map[string]string{"name": "name must be a positive capacity"})
	}

	r, err := u.Get(ctx, id)
	if err != nil {
		return model.Rom{}, err
	}
	r.Name = in.Name

	if err := u.roms.Update(ctx, r); err != nil {
		if err == repo.ErrNotFound {
			return model.Rom{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Rom{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return r, nil
}

func (u *RomUsecase) Delete(ctx context.Context, id int64) error {
	err := u.roms.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
