package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/podium/internal/adapters/http/api"
	app "github.com/okian/podium/internal/app"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestServer() (*httptest.Server, *app.Service) {
	svc := app.New()
	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(context.Background(), mux)
	return httptest.NewServer(mux), svc
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestBoardLifecycle(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	Convey("Given a running API server", t, func() {
		Convey("When creating a board", func() {
			resp, board := doJSON(t, http.MethodPost, srv.URL+"/boards", map[string]string{"name": "Season"})
			So(resp.StatusCode, ShouldEqual, http.StatusCreated)
			So(board["name"], ShouldEqual, "Season")
			boardID := board["id"].(string)

			Convey("Then it shows up in the listing", func() {
				resp, _ := doJSON(t, http.MethodGet, srv.URL+"/boards", nil)
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})

			Convey("And cards can be added, reordered and deleted", func() {
				var cardIDs []string
				for _, name := range []string{"A", "B", "C"} {
					resp, card := doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/cards", map[string]string{"name": name})
					So(resp.StatusCode, ShouldEqual, http.StatusCreated)
					cardIDs = append(cardIDs, card["id"].(string))
				}

				resp, body := doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/reorder", map[string]int{"from": 2, "to": 0})
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["changed"], ShouldBeTrue)

				resp, body = doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/reorder", map[string]int{"from": 1, "to": 1})
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["changed"], ShouldBeFalse)

				resp, _ = doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/reorder", map[string]int{"from": 9, "to": 0})
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

				resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/boards/"+boardID+"/cards/"+cardIDs[0], nil)
				So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
			})

			Convey("And deleting the board returns no content", func() {
				resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/boards/"+boardID, nil)
				So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
			})
		})

		Convey("When creating a board without a name", func() {
			resp, _ := doJSON(t, http.MethodPost, srv.URL+"/boards", map[string]string{})
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When deleting an unknown board", func() {
			resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/boards/ghost", nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestEpisodeEndpoints(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	Convey("Given a board with cards and one captured episode", t, func() {
		_, board := doJSON(t, http.MethodPost, srv.URL+"/boards", map[string]string{"name": "Season"})
		boardID := board["id"].(string)
		for _, name := range []string{"A", "B"} {
			doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/cards", map[string]string{"name": name})
		}

		resp, snap := doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/episodes", map[string]string{})
		So(resp.StatusCode, ShouldEqual, http.StatusCreated)
		So(snap["episode_number"], ShouldEqual, 1)
		So(snap["label"], ShouldEqual, "Episode 1")
		snapID := snap["id"].(string)

		Convey("When reordering and asking for movement against episode 1", func() {
			doJSON(t, http.MethodPost, srv.URL+"/boards/"+boardID+"/reorder", map[string]int{"from": 1, "to": 0})

			resp, err := http.Get(srv.URL + "/boards/" + boardID + "/movement?baseline=1")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var results []map[string]any
			So(json.NewDecoder(resp.Body).Decode(&results), ShouldBeNil)
			So(len(results), ShouldEqual, 2)
			So(results[0]["card_name"], ShouldEqual, "B")
			So(results[0]["movement"], ShouldEqual, 1)
			So(results[1]["movement"], ShouldEqual, -1)
		})

		Convey("When asking for movement against a missing episode", func() {
			resp, err := http.Get(srv.URL + "/boards/" + boardID + "/movement?baseline=9")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When editing the episode's label", func() {
			resp, updated := doJSON(t, http.MethodPatch,
				fmt.Sprintf("%s/boards/%s/episodes/%s", srv.URL, boardID, snapID),
				map[string]string{"label": "Premiere", "notes": "n"})
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(updated["label"], ShouldEqual, "Premiere")
			So(updated["episode_number"], ShouldEqual, 1)
		})

		Convey("When fetching trajectories", func() {
			resp, err := http.Get(srv.URL + "/boards/" + boardID + "/trajectories")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var all []map[string]any
			So(json.NewDecoder(resp.Body).Decode(&all), ShouldBeNil)
			So(len(all), ShouldEqual, 2)
			So(all[0]["summary"], ShouldEqual, "1")
		})

		Convey("When deleting the episode", func() {
			resp, _ := doJSON(t, http.MethodDelete,
				fmt.Sprintf("%s/boards/%s/episodes/%s", srv.URL, boardID, snapID), nil)
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)

			Convey("Then the history is empty again", func() {
				resp, err := http.Get(srv.URL + "/boards/" + boardID + "/episodes")
				So(err, ShouldBeNil)
				defer resp.Body.Close()
				var episodes []any
				So(json.NewDecoder(resp.Body).Decode(&episodes), ShouldBeNil)
				So(episodes, ShouldBeEmpty)
			})
		})
	})
}

func TestStatsAndHealth(t *testing.T) {
	srv, _ := newTestServer()
	defer srv.Close()

	Convey("Given a running API server", t, func() {
		Convey("The stats endpoint answers", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("The health endpoint serves metrics", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})
	})
}
