package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
)

func (a *App) cmdAdmin(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteAdminHome}) {
		return nil
	}
	printlnFn("Admin: 'artlist', 'addart', 'updateart <id>', 'deleteart <id>', 'users'.")
	return nil
}

func (a *App) cmdArtList(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteArtList}) {
		return nil
	}
	if err := a.openListing(ctx); err != nil {
		return err
	}
	renderArts(a.listing.All())
	return nil
}

func (a *App) cmdArtDetail(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "id")
	if err != nil {
		return a.report(ctx, "art", err, "")
	}
	return a.openDetail(ctx, Location{Route: RouteArtDetail, ID: id})
}

// cmdAddArt prompts for every field and up to four picture files.
func (a *App) cmdAddArt(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteAddArt}) {
		return nil
	}

	form, err := a.promptArtForm(models.ArtForm{}, false)
	if err != nil {
		return a.inputFailed(ctx, "add art", err)
	}
	art, err := a.svc.Arts.Add(ctx, form)
	if err != nil {
		return a.report(ctx, "add art", err, "")
	}
	printlnFn(fmt.Sprintf("Art added with id %d.", art.ID))
	return a.cmdArtList(ctx, nil)
}

// cmdUpdateArt prefills the form from the current art; empty input keeps a
// value.
func (a *App) cmdUpdateArt(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "id")
	if err != nil {
		return a.report(ctx, "update art", err, "")
	}
	if !a.navigate(Location{Route: RouteArtUpdate, ID: id}) {
		return nil
	}
	if err := a.detail.Load(ctx, id); err != nil {
		return a.report(ctx, "load art", err, "")
	}
	current, _ := a.detail.Art()

	form, err := a.promptArtForm(models.FormFromArt(current), true)
	if err != nil {
		return a.inputFailed(ctx, "update art", err)
	}
	art, err := a.svc.Arts.Update(ctx, id, form)
	if err != nil {
		return a.report(ctx, "update art", err, "")
	}
	printlnFn("Art updated.")
	return a.openDetail(ctx, Location{Route: RouteArtDetail, ID: art.ID})
}

func (a *App) promptArtForm(form models.ArtForm, prefill bool) (models.ArtForm, error) {
	ask := func(label, current string) (string, error) {
		if prefill {
			return promptDefault(a.src, label, current, a.out)
		}
		return getSimpleText(a.src, label, a.out)
	}

	var err error
	if form.Title, err = ask("Title", form.Title); err != nil {
		return form, err
	}
	if form.Description, err = ask("Artist / description", form.Description); err != nil {
		return form, err
	}
	if form.Category, err = ask("Category", form.Category); err != nil {
		return form, err
	}
	typed, err := ask("Price", strconv.FormatFloat(form.Price, 'f', -1, 64))
	if err != nil {
		return form, err
	}
	if form.Price, err = services.ParsePrice(typed); err != nil {
		return form, err
	}
	for i := range form.Pictures {
		p, err := getSimpleText(a.src, fmt.Sprintf("Picture %d file (optional)", i+1), a.out)
		if err != nil {
			return form, err
		}
		form.Pictures[i] = p
	}
	return form, nil
}

// cmdDeleteArt deletes an art and returns to the admin art list.
func (a *App) cmdDeleteArt(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "id")
	if err != nil {
		return a.report(ctx, "delete art", err, "")
	}
	if !a.navigate(Location{Route: RouteArtDetail, ID: id}) {
		return nil
	}
	if err := a.svc.Arts.Delete(ctx, id); err != nil {
		return a.report(ctx, "delete art", err, "")
	}
	printlnFn("Art deleted.")
	return a.cmdArtList(ctx, nil)
}

func (a *App) cmdUsers(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteAllUsers}) {
		return nil
	}
	if err := a.users.Load(ctx); err != nil {
		return a.report(ctx, "load users", err, "")
	}
	renderUsers(a.users.Users())
	return nil
}
