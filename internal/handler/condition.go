package handler

import (
	"errors"
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/VasBayern/mobile-project/internal/storage"
	"github.com/VasBayern/mobile-project/internal/usecase"
)

var errMissing = errors.New("missing")

func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// conditionInput はクエリ文字列から共通の一覧条件を読む。
// sortのみ必須、他はデフォルトにフォールバック。
func conditionInput(c echo.Context) (usecase.ConditionInput, error) {
	var in usecase.ConditionInput

	v := c.QueryParam("sort")
	if v == "" {
		return in, errors.New("sort required")
	}
	sort, err := strconv.Atoi(v)
	if err != nil {
		return in, errors.New("invalid sort")
	}
	in.Sort = sort

	if in.Order, err = queryInt(c, "order", 0); err != nil {
		return in, errors.New("invalid order")
	}
	// per_page未指定は未知バケット扱いでMaxRecordにフォールバックさせる
	if in.PerPage, err = queryInt(c, "per_page", -1); err != nil {
		return in, errors.New("invalid per_page")
	}
	if in.Page, err = queryInt(c, "page", 1); err != nil {
		return in, errors.New("invalid page")
	}

	in.Search = c.QueryParam("search")
	in.StartDate = c.QueryParam("start_date")
	in.EndDate = c.QueryParam("end_date")
	return in, nil
}

// formFile はアップロードファイルを1つ開く。フィールド未送信なら errMissing。
// closerは呼び出し側が閉じる。
func formFile(c echo.Context, field string) (*storage.File, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil, errMissing
	}
	src, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &storage.File{Name: fh.Filename, Reader: src}, func() { src.Close() }, nil
}

// formFiles はフィールド配下の全ファイルを送信順のまま開く。
func formFiles(c echo.Context, field string) ([]storage.File, func(), error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, func() {}, errMissing
	}
	headers := form.File[field]
	if len(headers) == 0 {
		headers = form.File[field+"[]"]
	}

	var files []storage.File
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}
	for _, fh := range headers {
		src, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		opened = append(opened, src)
		files = append(files, storage.File{Name: fh.Filename, Reader: src})
	}
	return files, closeAll, nil
}

// 部分更新用のoptionalフォームフィールド読み取り

func formString(c echo.Context, field string) *string {
	values, err := c.FormParams()
	if err != nil {
		return nil
	}
	if vs, ok := values[field]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

func formInt(c echo.Context, field string) (*int, error) {
	s := formString(c, field)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, errors.New("invalid " + field)
	}
	return &n, nil
}

func formInt64(c echo.Context, field string) (*int64, error) {
	s := formString(c, field)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(*s, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + field)
	}
	return &n, nil
}
