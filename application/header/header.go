package header

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/muhammadheryan/car-showroom/constant"
	"github.com/muhammadheryan/car-showroom/model"
	carrepo "github.com/muhammadheryan/car-showroom/repository/car"
	cartrepo "github.com/muhammadheryan/car-showroom/repository/cart"
	userrepo "github.com/muhammadheryan/car-showroom/repository/user"
	"github.com/muhammadheryan/car-showroom/utils/errors"
	"github.com/muhammadheryan/car-showroom/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const Title = "Showroom Mobil"

type HeaderApp interface {
	// Render builds the header for viewer (nil for guests) with currentType
	// marked as the active car type filter.
	Render(ctx context.Context, viewer *uint64, currentType string) (*model.Header, error)
}

type HeaderAppImpl struct {
	carRepo  carrepo.CarRepository
	cartRepo cartrepo.CartRepository
	userRepo userrepo.UserRepository
}

func NewHeaderApp(carRepo carrepo.CarRepository, cartRepo cartrepo.CartRepository, userRepo userrepo.UserRepository) HeaderApp {
	return &HeaderAppImpl{
		carRepo:  carRepo,
		cartRepo: cartRepo,
		userRepo: userRepo,
	}
}

func (h *HeaderAppImpl) Render(ctx context.Context, viewer *uint64, currentType string) (*model.Header, error) {
	rawTypes, err := h.carRepo.DistinctTypes(ctx)
	if err != nil {
		logger.Error("[Header.Render] err carRepo.DistinctTypes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	current := normalizeType(cases.Lower(language.Indonesian), currentType)
	types := DistinctTypes(rawTypes)
	links := make([]model.CarTypeLink, 0, len(types))
	for _, t := range types {
		links = append(links, model.CarTypeLink{
			Type:   t,
			URL:    "/?type=" + url.QueryEscape(t),
			Active: t == current,
		})
	}

	header := &model.Header{
		Title:       Title,
		CarTypes:    links,
		CurrentType: current,
		Links:       guestLinks(),
	}

	if viewer == nil {
		return header, nil
	}

	user, err := h.userRepo.Get(ctx, &model.UserFilter{ID: *viewer})
	if err != nil {
		logger.Error("[Header.Render] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	// A session that outlived its user renders as a guest.
	if user == nil {
		return header, nil
	}

	count, err := h.cartRepo.CountByUser(ctx, user.ID)
	if err != nil {
		logger.Error("[Header.Render] err cartRepo.CountByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	header.Authenticated = true
	header.User = &model.HeaderUser{Name: user.Name, Initial: initial(user.Name)}
	header.Links = memberLinks()
	header.CartCount = count
	return header, nil
}

// DistinctTypes normalizes car types to trimmed lower case and removes
// empties and duplicates, keeping first-seen order.
func DistinctTypes(raw []string) []string {
	lower := cases.Lower(language.Indonesian)
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = normalizeType(lower, t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func normalizeType(lower cases.Caser, t string) string {
	return lower.String(strings.TrimSpace(t))
}

func initial(name string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return ""
	}
	return cases.Upper(language.Indonesian).String(string(r))
}

func guestLinks() []model.NavLink {
	return []model.NavLink{
		{Name: "Masuk", URL: "/login", Method: "GET"},
		{Name: "Daftar", URL: "/register", Method: "GET"},
	}
}

func memberLinks() []model.NavLink {
	return []model.NavLink{
		{Name: "Keranjang", URL: "/cart", Method: "GET"},
		{Name: "Pengaturan Akun", URL: "/account/settings", Method: "GET"},
		{Name: "Keluar", URL: "/logout", Method: "POST"},
	}
}
