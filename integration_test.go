package hlx_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/service"
	"github.com/hlx-protocol/hlx-go/pkg/subscription"
)

// startServer boots a simulator on a loopback port with a per-test
// backup path.
func startServer(t *testing.T) *service.Server {
	t.Helper()

	config := service.DefaultServerConfig()
	config.Address = "127.0.0.1:0"
	config.BackupPath = filepath.Join(t.TempDir(), "backup.cbor")

	srv := service.NewServer(config, model.NewDefaultRepository())
	require.NoError(t, srv.Start(context.Background()))
	t.Cleanup(func() { _ = srv.Stop() })
	return srv
}

func connectClient(t *testing.T, srv *service.Server) *service.Client {
	t.Helper()

	client := service.NewClient(service.DefaultClientConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, client.Connect(ctx, srv.Addr().String()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// waitEvent blocks until the channel delivers or the deadline passes.
func waitEvent(t *testing.T, ch <-chan subscription.Event) subscription.Event {
	t.Helper()

	select {
	case ev := <-ch:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

// TestE2E_MultiControllerBroadcast verifies that a mutation by one
// controller reaches every connected controller and both mirrors
// converge on the same value.
func TestE2E_MultiControllerBroadcast(t *testing.T) {
	srv := startServer(t)
	initiator := connectClient(t, srv)
	observer := connectClient(t, srv)

	require.NotEqual(t, initiator.PeerID(), observer.PeerID())

	events := make(chan subscription.Event, 16)
	observer.Subscribe(func(ev subscription.Event) { events <- ev })

	ctx := context.Background()
	got, err := initiator.SetZoneVolume(ctx, 3, -25)
	require.NoError(t, err)
	require.Equal(t, -25, got)

	ev := waitEvent(t, events)
	require.Equal(t, subscription.ZoneVolumeChanged{Zone: 3, Level: -25}, ev)

	// Both mirrors agree with the amplifier.
	for _, c := range []*service.Client{initiator, observer} {
		zone, st := c.Repository().Zone(3)
		require.True(t, st.OK())
		volume, st := zone.Volume()
		require.True(t, st.OK())
		require.Equal(t, -25, volume)
	}
}

// TestE2E_RenameVisibleToLateJoiner verifies that a controller that
// connects after a rename can learn it with a zone query.
func TestE2E_RenameVisibleToLateJoiner(t *testing.T) {
	srv := startServer(t)
	first := connectClient(t, srv)

	ctx := context.Background()
	stored, err := first.SetZoneName(ctx, 7, "Terrace")
	require.NoError(t, err)
	require.Equal(t, "Terrace", stored)

	late := connectClient(t, srv)
	require.NoError(t, late.QueryZone(ctx, 7))

	zone, st := late.Repository().Zone(7)
	require.True(t, st.OK())
	name, st := zone.Name()
	require.True(t, st.OK())
	require.Equal(t, "Terrace", name)
}

// TestE2E_PersistenceAcrossRestart exercises the full save/load cycle:
// mutate, save, restart the simulator on the same backup blob, load,
// and confirm the state round-tripped.
func TestE2E_PersistenceAcrossRestart(t *testing.T) {
	backup := filepath.Join(t.TempDir(), "backup.cbor")

	config := service.DefaultServerConfig()
	config.Address = "127.0.0.1:0"
	config.BackupPath = backup

	srv := service.NewServer(config, model.NewDefaultRepository())
	require.NoError(t, srv.Start(context.Background()))

	client := service.NewClient(service.DefaultClientConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	require.NoError(t, client.Connect(ctx, srv.Addr().String()))
	cancel()

	opCtx := context.Background()
	_, err := client.SetZoneVolume(opCtx, 5, -40)
	require.NoError(t, err)
	_, err = client.SetZoneName(opCtx, 5, "Cellar")
	require.NoError(t, err)
	require.NoError(t, client.ConfigSave(opCtx))

	require.NoError(t, client.Close())
	require.NoError(t, srv.Stop())

	// Fresh process, same blob.
	restarted := service.NewServer(config, model.NewDefaultRepository())
	require.NoError(t, restarted.Start(context.Background()))
	t.Cleanup(func() { _ = restarted.Stop() })

	reclient := connectClient(t, restarted)
	require.NoError(t, reclient.ConfigLoad(context.Background()))

	zone, st := restarted.Repository().Zone(5)
	require.True(t, st.OK())
	volume, st := zone.Volume()
	require.True(t, st.OK())
	require.Equal(t, -40, volume)
	name, st := zone.Name()
	require.True(t, st.OK())
	require.Equal(t, "Cellar", name)
}

// TestE2E_GroupFanOut drives a group mutation and watches the per-zone
// broadcasts arrive at a second controller in ascending zone order.
func TestE2E_GroupFanOut(t *testing.T) {
	srv := startServer(t)
	initiator := connectClient(t, srv)
	observer := connectClient(t, srv)

	events := make(chan subscription.Event, 16)
	observer.Subscribe(func(ev subscription.Event) { events <- ev })

	ctx := context.Background()
	require.NoError(t, initiator.GroupAddZone(ctx, 1, 4))
	require.NoError(t, initiator.GroupAddZone(ctx, 1, 2))
	require.NoError(t, initiator.SetGroupSource(ctx, 1, 6))

	require.Equal(t, subscription.GroupMembershipChanged{Group: 1, Added: 4}, waitEvent(t, events))
	require.Equal(t, subscription.GroupMembershipChanged{Group: 1, Added: 2}, waitEvent(t, events))
	require.Equal(t, subscription.ZoneSourceChanged{Zone: 2, Source: 6}, waitEvent(t, events))
	require.Equal(t, subscription.ZoneSourceChanged{Zone: 4, Source: 6}, waitEvent(t, events))
	require.Equal(t, subscription.GroupSourceChanged{Group: 1, Source: 6}, waitEvent(t, events))
}

// TestE2E_ServerStopFailsPendingClients verifies that stopping the
// simulator surfaces as errors on subsequent client operations rather
// than hangs.
func TestE2E_ServerStopFailsPendingClients(t *testing.T) {
	srv := startServer(t)
	client := connectClient(t, srv)

	ctx := context.Background()
	_, err := client.SetZoneVolume(ctx, 1, -10)
	require.NoError(t, err)

	require.NoError(t, srv.Stop())

	opCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err = client.SetZoneVolume(opCtx, 1, -11)
	require.Error(t, err)
}
