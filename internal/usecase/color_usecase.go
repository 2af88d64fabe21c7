package usecase

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/VasBayern/mobile-project/internal/config"
	"github.com/VasBayern/mobile-project/internal/domain/model"
	repo "github.com/VasBayern/mobile-project/internal/repository"
)

var hexCodeRe = regexp.MustCompile(`^#[0-9a-fA-F]{3,6}$`)

type ColorUsecase struct {
	colors repo.ColorRepository
	cfg    config.Config
	clock  Clock
}

// DI
func NewColorUsecase(colors repo.ColorRepository, cfg config.Config, clock Clock) *ColorUsecase {
	return &ColorUsecase{colors: colors, cfg: cfg, clock: clock}
}

type ColorInput struct {
	Name string
	Code string
}

type ColorUpdateInput struct {
	Name *string
	Code *string
}

func validateColorCode(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	return code, hexCodeRe.MatchString(code)
}

func (u *ColorUsecase) List(ctx context.Context, in ConditionInput) (repo.Page[model.Color], error) {
	cond, err := parseCondition(in, model.ColorSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return repo.Page[model.Color]{}, err
	}

	page, err := u.colors.List(ctx, cond)
	if err != nil {
		return repo.Page[model.Color]{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page, nil
}

// Export は条件に合うカラーをページネーションなしで全件返す。
func (u *ColorUsecase) Export(ctx context.Context, in ConditionInput) ([]model.Color, error) {
	cond, err := parseCondition(in, model.ColorSortColumns, u.cfg, u.clock.Now())
	if err != nil {
		return nil, err
	}
	cond.PerPage = 0

	page, err := u.colors.List(ctx, cond)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return page.Items, nil
}

func (u *ColorUsecase) Create(ctx context.Context, in ColorInput) (model.Color, error) {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name required"
	}
	code, ok := validateColorCode(in.Code)
	if !ok {
		fields["code"] = "code must be a hex color like #ff0000"
	}
	if len(fields) > 0 {
		return model.Color{}, NewValidationError(fields)
	}

	c, err := u.colors.Create(ctx, model.Color{
		Name: strings.TrimSpace(in.Name),
		Code: code,
	})
	if err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ColorUsecase) Get(ctx context.Context, id int64) (model.Color, error) {
	c, err := u.colors.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Color{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ColorUsecase) Update(ctx context.Context, id int64, in ColorUpdateInput) (model.Color, error) {
	c, err := u.Get(ctx, id)
	if err != nil {
		return model.Color{}, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return model.Color{}, NewValidationError(map[string]string{"name": "name required"})
		}
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Code != nil {
		code, ok := validateColorCode(*in.Code)
		if !ok {
			return model.Color{}, NewValidationError(map[string]string{"code": "code must be a hex color like #ff0000"})
		}
		c.Code = code
	}

	if err := u.colors.Update(ctx, c); err != nil {
		if err == repo.ErrNotFound {
			return model.Color{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Color{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

func (u *ColorUsecase) Delete(ctx context.Context, id int64) error {
	err := u.colors.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
