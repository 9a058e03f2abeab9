package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hlx-protocol/hlx-go/pkg/model"
	"github.com/hlx-protocol/hlx-go/pkg/service"
	"github.com/hlx-protocol/hlx-go/pkg/subscription"
)

// Shell is the interactive command loop for hlx-client.
type Shell struct {
	client *service.Client
	rl     *readline.Instance
}

// NewShell creates the shell and subscribes to amplifier notifications.
func NewShell(client *service.Client) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "hlx> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := &Shell{client: client, rl: rl}
	client.Subscribe(s.printEvent)
	return s, nil
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "volume", "v":
			s.cmdVolume(ctx, args)

		case "up":
			s.cmdVolumeStep(ctx, args, s.client.ZoneVolumeUp)

		case "down":
			s.cmdVolumeStep(ctx, args, s.client.ZoneVolumeDown)

		case "mute":
			s.cmdMute(ctx, args, true)

		case "unmute":
			s.cmdMute(ctx, args, false)

		case "lock":
			s.cmdLock(ctx, args, true)

		case "unlock":
			s.cmdLock(ctx, args, false)

		case "source":
			s.cmdSource(ctx, args)

		case "name":
			s.cmdName(ctx, args)

		case "balance":
			s.cmdBalance(ctx, args)

		case "tone":
			s.cmdTone(ctx, args)

		case "mode":
			s.cmdMode(ctx, args)

		case "band":
			s.cmdBand(ctx, args)

		case "preset":
			s.cmdPreset(ctx, args)

		case "highpass", "lowpass":
			s.cmdCrossover(ctx, cmd, args)

		case "zone", "z":
			s.cmdQueryZone(ctx, args)

		case "gvolume", "gv":
			s.cmdGroupVolume(ctx, args)

		case "gup":
			s.cmdGroupVolumeStep(ctx, args, s.client.GroupVolumeUp)

		case "gdown":
			s.cmdGroupVolumeStep(ctx, args, s.client.GroupVolumeDown)

		case "gmute":
			s.cmdGroupMute(ctx, args, true)

		case "gunmute":
			s.cmdGroupMute(ctx, args, false)

		case "gsource":
			s.cmdGroupSource(ctx, args)

		case "gname":
			s.cmdGroupName(ctx, args)

		case "gadd":
			s.cmdGroupMember(ctx, args, s.client.GroupAddZone)

		case "gremove":
			s.cmdGroupMember(ctx, args, s.client.GroupRemoveZone)

		case "gclear":
			s.cmdGroupClear(ctx, args)

		case "sname":
			s.cmdEntityName(ctx, args, "sname <source> <name>", s.client.SetSourceName)

		case "pname":
			s.cmdEntityName(ctx, args, "pname <preset> <name>", s.client.SetPresetName)

		case "fname":
			s.cmdEntityName(ctx, args, "fname <favorite> <name>", s.client.SetFavoriteName)

		case "pband":
			s.cmdPresetBand(ctx, args)

		case "qpreset":
			s.cmdQueryPreset(ctx, args)

		case "qfavorite":
			s.cmdQueryFavorite(ctx, args)

		case "bright":
			s.cmdBrightness(ctx, args)

		case "panellock":
			s.cmdPanelLock(ctx, args)

		case "ir":
			s.cmdInfrared(ctx, args)

		case "network":
			s.cmdNetwork(ctx)

		case "load", "save", "reset", "qx":
			s.cmdConfig(ctx, cmd)

		case "status":
			s.cmdStatus()

		case "quit", "exit", "q":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(s.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.rl.Stdout(), `
HLX Controller Commands:
  Zone:
    volume <zone> <level>      - Set volume (-80..0)
    up|down <zone>             - Step volume by one
    mute|unmute <zone>         - Mute control
    lock|unlock <zone>         - Volume lock control
    source <zone> <source>     - Select input source
    name <zone> <name>         - Rename zone
    balance <zone> <value>     - Set balance (-80..80)
    tone <zone> <bass> <treble>- Set tone (-10..10)
    mode <zone> <mode>         - disabled|zone|preset|tone|lowpass|highpass
    band <zone> <band> <level> - Set equalizer band (-10..10)
    preset <zone> <preset>     - Assign equalizer preset
    highpass <zone> <hz>       - Set highpass crossover
    lowpass <zone> <hz>        - Set lowpass crossover
    zone <zone>                - Query full zone state

  Group:
    gvolume <group> <level>    - Set group volume
    gup|gdown <group>          - Step group volume
    gmute|gunmute <group>      - Group mute control
    gsource <group> <source>   - Group source select
    gname <group> <name>       - Rename group
    gadd <group> <zone>        - Add zone to group
    gremove <group> <zone>     - Remove zone from group
    gclear <group>             - Remove all zones

  Entities:
    sname <source> <name>      - Rename source
    pname <preset> <name>      - Rename equalizer preset
    fname <favorite> <name>    - Rename favorite
    pband <preset> <band> <lv> - Set preset band
    qpreset <preset>           - Query preset state
    qfavorite <favorite>       - Query favorite state

  Chassis:
    bright <0..3>              - Front panel brightness
    panellock on|off           - Front panel key lock
    ir on|off                  - Infrared receiver (on = enabled)
    network                    - Query network settings

  Configuration:
    load | save | reset | qx   - Backup operations / query all

  General:
    status                     - Show mirror summary
    help                       - Show this help
    quit                       - Exit`)
}

// printEvent renders every amplifier notification above the prompt.
func (s *Shell) printEvent(ev subscription.Event) {
	fmt.Fprintf(s.rl.Stdout(), "[EVENT] %s\n", formatEvent(ev))
}

func formatEvent(ev subscription.Event) string {
	switch e := ev.(type) {
	case subscription.ZoneVolumeChanged:
		return fmt.Sprintf("zone %d volume %d", e.Zone, e.Level)
	case subscription.ZoneMuteChanged:
		return fmt.Sprintf("zone %d muted=%t", e.Zone, e.Muted)
	case subscription.ZoneVolumeLockChanged:
		return fmt.Sprintf("zone %d volume lock=%t", e.Zone, e.Locked)
	case subscription.ZoneSourceChanged:
		return fmt.Sprintf("zone %d source %d", e.Zone, e.Source)
	case subscription.ZoneNameChanged:
		return fmt.Sprintf("zone %d name %q", e.Zone, e.Name)
	case subscription.ZoneBalanceChanged:
		return fmt.Sprintf("zone %d balance %d", e.Zone, e.Balance)
	case subscription.ZoneToneChanged:
		return fmt.Sprintf("zone %d bass %d treble %d", e.Zone, e.Bass, e.Treble)
	case subscription.ZoneSoundModeChanged:
		return fmt.Sprintf("zone %d sound mode %s", e.Zone, e.Mode)
	case subscription.ZoneBandChanged:
		return fmt.Sprintf("zone %d band %d level %d", e.Zone, e.Band, e.Level)
	case subscription.ZonePresetChanged:
		return fmt.Sprintf("zone %d preset %d", e.Zone, e.Preset)
	case subscription.ZoneCrossoverChanged:
		kind := "lowpass"
		if e.Highpass {
			kind = "highpass"
		}
		return fmt.Sprintf("zone %d %s %d Hz", e.Zone, kind, e.Hz)
	case subscription.GroupVolumeChanged:
		return fmt.Sprintf("group %d volume %d", e.Group, e.Level)
	case subscription.GroupMuteChanged:
		return fmt.Sprintf("group %d muted=%t", e.Group, e.Muted)
	case subscription.GroupSourceChanged:
		return fmt.Sprintf("group %d source %d", e.Group, e.Source)
	case subscription.GroupNameChanged:
		return fmt.Sprintf("group %d name %q", e.Group, e.Name)
	case subscription.GroupMembershipChanged:
		switch {
		case e.Cleared:
			return fmt.Sprintf("group %d cleared", e.Group)
		case e.Added != 0:
			return fmt.Sprintf("group %d added zone %d", e.Group, e.Added)
		default:
			return fmt.Sprintf("group %d removed zone %d", e.Group, e.Removed)
		}
	case subscription.SourceNameChanged:
		return fmt.Sprintf("source %d name %q", e.Source, e.Name)
	case subscription.PresetNameChanged:
		return fmt.Sprintf("preset %d name %q", e.Preset, e.Name)
	case subscription.PresetBandChanged:
		return fmt.Sprintf("preset %d band %d level %d", e.Preset, e.Band, e.Level)
	case subscription.FavoriteNameChanged:
		return fmt.Sprintf("favorite %d name %q", e.Favorite, e.Name)
	case subscription.BrightnessChanged:
		return fmt.Sprintf("brightness %d", e.Brightness)
	case subscription.PanelLockChanged:
		return fmt.Sprintf("panel lock=%t", e.Locked)
	case subscription.InfraredChanged:
		return fmt.Sprintf("infrared disabled=%t", e.Disabled)
	case subscription.NetworkChanged:
		switch e.Field {
		case subscription.NetworkDHCP, subscription.NetworkSDDP:
			return fmt.Sprintf("network %s=%t", e.Field, e.Flag)
		default:
			return fmt.Sprintf("network %s=%s", e.Field, e.Value)
		}
	case subscription.ConfigLifecycle:
		if e.Phase == subscription.PhaseInProgress {
			return fmt.Sprintf("config %s %d%%", e.Op, e.Percent)
		}
		return fmt.Sprintf("config %s %s", e.Op, e.Phase)
	default:
		return fmt.Sprintf("%#v", ev)
	}
}

func (s *Shell) cmdVolume(ctx context.Context, args []string) {
	zone, level, ok := s.twoInts(args, "volume <zone> <level>")
	if !ok {
		return
	}
	got, err := s.client.SetZoneVolume(ctx, zone, level)
	s.report(err, "Zone %d volume %d", zone, got)
}

func (s *Shell) cmdVolumeStep(ctx context.Context, args []string, step func(context.Context, int) (int, error)) {
	zone, ok := s.oneInt(args, "up|down <zone>")
	if !ok {
		return
	}
	got, err := step(ctx, zone)
	s.report(err, "Zone %d volume %d", zone, got)
}

func (s *Shell) cmdMute(ctx context.Context, args []string, muted bool) {
	zone, ok := s.oneInt(args, "mute|unmute <zone>")
	if !ok {
		return
	}
	err := s.client.SetZoneMuted(ctx, zone, muted)
	s.report(err, "Zone %d muted=%t", zone, muted)
}

func (s *Shell) cmdLock(ctx context.Context, args []string, locked bool) {
	zone, ok := s.oneInt(args, "lock|unlock <zone>")
	if !ok {
		return
	}
	err := s.client.SetZoneVolumeLocked(ctx, zone, locked)
	s.report(err, "Zone %d volume lock=%t", zone, locked)
}

func (s *Shell) cmdSource(ctx context.Context, args []string) {
	zone, source, ok := s.twoInts(args, "source <zone> <source>")
	if !ok {
		return
	}
	err := s.client.SetZoneSource(ctx, zone, source)
	s.report(err, "Zone %d source %d", zone, source)
}

func (s *Shell) cmdName(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.usage("name <zone> <name>")
		return
	}
	zone, ok := s.parseInt(args[0])
	if !ok {
		return
	}
	stored, err := s.client.SetZoneName(ctx, zone, strings.Join(args[1:], " "))
	s.report(err, "Zone %d name %q", zone, stored)
}

func (s *Shell) cmdBalance(ctx context.Context, args []string) {
	zone, balance, ok := s.twoInts(args, "balance <zone> <value>")
	if !ok {
		return
	}
	err := s.client.SetZoneBalance(ctx, zone, balance)
	s.report(err, "Zone %d balance %d", zone, balance)
}

func (s *Shell) cmdTone(ctx context.Context, args []string) {
	if len(args) < 3 {
		s.usage("tone <zone> <bass> <treble>")
		return
	}
	zone, ok1 := s.parseInt(args[0])
	bass, ok2 := s.parseInt(args[1])
	treble, ok3 := s.parseInt(args[2])
	if !ok1 || !ok2 || !ok3 {
		return
	}
	err := s.client.SetZoneTone(ctx, zone, bass, treble)
	s.report(err, "Zone %d bass %d treble %d", zone, bass, treble)
}

func (s *Shell) cmdMode(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.usage("mode <zone> disabled|zone|preset|tone|lowpass|highpass")
		return
	}
	zone, ok := s.parseInt(args[0])
	if !ok {
		return
	}
	mode, ok := parseSoundMode(args[1])
	if !ok {
		fmt.Fprintf(s.rl.Stdout(), "Unknown sound mode: %s\n", args[1])
		return
	}
	err := s.client.SetZoneSoundMode(ctx, zone, mode)
	s.report(err, "Zone %d sound mode %s", zone, mode)
}

func (s *Shell) cmdBand(ctx context.Context, args []string) {
	if len(args) < 3 {
		s.usage("band <zone> <band> <level>")
		return
	}
	zone, ok1 := s.parseInt(args[0])
	band, ok2 := s.parseInt(args[1])
	level, ok3 := s.parseInt(args[2])
	if !ok1 || !ok2 || !ok3 {
		return
	}
	err := s.client.SetZoneBand(ctx, zone, band, level)
	s.report(err, "Zone %d band %d level %d", zone, band, level)
}

func (s *Shell) cmdPreset(ctx context.Context, args []string) {
	zone, preset, ok := s.twoInts(args, "preset <zone> <preset>")
	if !ok {
		return
	}
	err := s.client.SetZonePreset(ctx, zone, preset)
	s.report(err, "Zone %d preset %d", zone, preset)
}

func (s *Shell) cmdCrossover(ctx context.Context, cmd string, args []string) {
	zone, hz, ok := s.twoInts(args, cmd+" <zone> <hz>")
	if !ok {
		return
	}
	var err error
	if cmd == "highpass" {
		err = s.client.SetZoneHighpass(ctx, zone, hz)
	} else {
		err = s.client.SetZoneLowpass(ctx, zone, hz)
	}
	s.report(err, "Zone %d %s %d Hz", zone, cmd, hz)
}

func (s *Shell) cmdQueryZone(ctx context.Context, args []string) {
	zone, ok := s.oneInt(args, "zone <zone>")
	if !ok {
		return
	}
	if err := s.client.QueryZone(ctx, zone); err != nil {
		s.report(err, "")
		return
	}
	s.showZone(zone)
}

// showZone prints the mirror's view of one zone.
func (s *Shell) showZone(zoneID int) {
	zone, st := s.client.Repository().Zone(zoneID)
	if !st.OK() {
		fmt.Fprintf(s.rl.Stdout(), "Zone %d: %s\n", zoneID, st)
		return
	}

	w := s.rl.Stdout()
	fmt.Fprintf(w, "\nZone %d\n", zoneID)
	fmt.Fprintln(w, "-------------------------------------------")
	if name, st := zone.Name(); st.OK() {
		fmt.Fprintf(w, "  Name:     %s\n", name)
	}
	if source, st := zone.Source(); st.OK() {
		fmt.Fprintf(w, "  Source:   %d\n", source)
	}
	if volume, st := zone.Volume(); st.OK() {
		fmt.Fprintf(w, "  Volume:   %d\n", volume)
	}
	if muted, st := zone.Muted(); st.OK() {
		fmt.Fprintf(w, "  Muted:    %t\n", muted)
	}
	if locked, st := zone.VolumeLocked(); st.OK() {
		fmt.Fprintf(w, "  Locked:   %t\n", locked)
	}
	if balance, st := zone.Balance(); st.OK() {
		fmt.Fprintf(w, "  Balance:  %d\n", balance)
	}
	if bass, treble, st := zone.Tone(); st.OK() {
		fmt.Fprintf(w, "  Tone:     bass %d, treble %d\n", bass, treble)
	}
	if mode, st := zone.SoundModeState(); st.OK() {
		fmt.Fprintf(w, "  Mode:     %s\n", mode)
	}
	if preset, st := zone.Preset(); st.OK() {
		fmt.Fprintf(w, "  Preset:   %d\n", preset)
	}
	fmt.Fprintln(w)
}

func (s *Shell) cmdGroupVolume(ctx context.Context, args []string) {
	group, level, ok := s.twoInts(args, "gvolume <group> <level>")
	if !ok {
		return
	}
	got, err := s.client.SetGroupVolume(ctx, group, level)
	s.report(err, "Group %d volume %d", group, got)
}

func (s *Shell) cmdGroupVolumeStep(ctx context.Context, args []string, step func(context.Context, int) (int, error)) {
	group, ok := s.oneInt(args, "gup|gdown <group>")
	if !ok {
		return
	}
	got, err := step(ctx, group)
	s.report(err, "Group %d volume %d", group, got)
}

func (s *Shell) cmdGroupMute(ctx context.Context, args []string, muted bool) {
	group, ok := s.oneInt(args, "gmute|gunmute <group>")
	if !ok {
		return
	}
	err := s.client.SetGroupMuted(ctx, group, muted)
	s.report(err, "Group %d muted=%t", group, muted)
}

func (s *Shell) cmdGroupSource(ctx context.Context, args []string) {
	group, source, ok := s.twoInts(args, "gsource <group> <source>")
	if !ok {
		return
	}
	err := s.client.SetGroupSource(ctx, group, source)
	s.report(err, "Group %d source %d", group, source)
}

func (s *Shell) cmdGroupName(ctx context.Context, args []string) {
	if len(args) < 2 {
		s.usage("gname <group> <name>")
		return
	}
	group, ok := s.parseInt(args[0])
	if !ok {
		return
	}
	stored, err := s.client.SetGroupName(ctx, group, strings.Join(args[1:], " "))
	s.report(err, "Group %d name %q", group, stored)
}

func (s *Shell) cmdGroupMember(ctx context.Context, args []string, op func(context.Context, int, int) error) {
	group, zone, ok := s.twoInts(args, "gadd|gremove <group> <zone>")
	if !ok {
		return
	}
	err := op(ctx, group, zone)
	s.report(err, "Group %d membership updated", group)
}

func (s *Shell) cmdGroupClear(ctx context.Context, args []string) {
	group, ok := s.oneInt(args, "gclear <group>")
	if !ok {
		return
	}
	err := s.client.GroupClearZones(ctx, group)
	s.report(err, "Group %d cleared", group)
}

func (s *Shell) cmdEntityName(ctx context.Context, args []string, use string, op func(context.Context, int, string) (string, error)) {
	if len(args) < 2 {
		s.usage(use)
		return
	}
	id, ok := s.parseInt(args[0])
	if !ok {
		return
	}
	stored, err := op(ctx, id, strings.Join(args[1:], " "))
	s.report(err, "Renamed %d to %q", id, stored)
}

func (s *Shell) cmdPresetBand(ctx context.Context, args []string) {
	if len(args) < 3 {
		s.usage("pband <preset> <band> <level>")
		return
	}
	preset, ok1 := s.parseInt(args[0])
	band, ok2 := s.parseInt(args[1])
	level, ok3 := s.parseInt(args[2])
	if !ok1 || !ok2 || !ok3 {
		return
	}
	err := s.client.SetPresetBand(ctx, preset, band, level)
	s.report(err, "Preset %d band %d level %d", preset, band, level)
}

func (s *Shell) cmdQueryPreset(ctx context.Context, args []string) {
	preset, ok := s.oneInt(args, "qpreset <preset>")
	if !ok {
		return
	}
	if err := s.client.QueryPreset(ctx, preset); err != nil {
		s.report(err, "")
		return
	}

	p, st := s.client.Repository().EqualizerPreset(preset)
	if !st.OK() {
		fmt.Fprintf(s.rl.Stdout(), "Preset %d: %s\n", preset, st)
		return
	}
	w := s.rl.Stdout()
	fmt.Fprintf(w, "Preset %d\n", preset)
	if name, st := p.Name(); st.OK() {
		fmt.Fprintf(w, "  Name:  %s\n", name)
	}
	levels := make([]string, 0, model.EqualizerBandCount)
	for band := 1; band <= model.EqualizerBandCount; band++ {
		if level, st := p.Band(band); st.OK() {
			levels = append(levels, strconv.Itoa(level))
		} else {
			levels = append(levels, "-")
		}
	}
	fmt.Fprintf(w, "  Bands: %s\n", strings.Join(levels, " "))
}

func (s *Shell) cmdQueryFavorite(ctx context.Context, args []string) {
	favorite, ok := s.oneInt(args, "qfavorite <favorite>")
	if !ok {
		return
	}
	if err := s.client.QueryFavorite(ctx, favorite); err != nil {
		s.report(err, "")
		return
	}

	f, st := s.client.Repository().Favorite(favorite)
	if !st.OK() {
		fmt.Fprintf(s.rl.Stdout(), "Favorite %d: %s\n", favorite, st)
		return
	}
	if name, st := f.Name(); st.OK() {
		fmt.Fprintf(s.rl.Stdout(), "Favorite %d name %q\n", favorite, name)
	} else {
		fmt.Fprintf(s.rl.Stdout(), "Favorite %d not named\n", favorite)
	}
}

func (s *Shell) cmdBrightness(ctx context.Context, args []string) {
	level, ok := s.oneInt(args, "bright <0..3>")
	if !ok {
		return
	}
	err := s.client.SetBrightness(ctx, level)
	s.report(err, "Brightness %d", level)
}

func (s *Shell) cmdPanelLock(ctx context.Context, args []string) {
	on, ok := s.onOff(args, "panellock on|off")
	if !ok {
		return
	}
	err := s.client.SetPanelLocked(ctx, on)
	s.report(err, "Panel lock=%t", on)
}

func (s *Shell) cmdInfrared(ctx context.Context, args []string) {
	on, ok := s.onOff(args, "ir on|off")
	if !ok {
		return
	}
	// The wire carries a disable flag; "ir on" enables the receiver.
	err := s.client.SetInfraredDisabled(ctx, !on)
	s.report(err, "Infrared enabled=%t", on)
}

func (s *Shell) cmdNetwork(ctx context.Context) {
	if err := s.client.QueryNetwork(ctx); err != nil {
		s.report(err, "")
		return
	}

	n := s.client.Repository().Network()
	w := s.rl.Stdout()
	fmt.Fprintln(w, "\nNetwork Settings")
	fmt.Fprintln(w, "-------------------------------------------")
	if dhcp, st := n.DHCPEnabled(); st.OK() {
		fmt.Fprintf(w, "  DHCP:    %t\n", dhcp)
	}
	if sddp, st := n.SDDPEnabled(); st.OK() {
		fmt.Fprintf(w, "  SDDP:    %t\n", sddp)
	}
	if mac, st := n.MACAddress(); st.OK() {
		fmt.Fprintf(w, "  MAC:     %s\n", mac)
	}
	if ip, st := n.HostIP(); st.OK() {
		fmt.Fprintf(w, "  IP:      %s\n", ip)
	}
	if mask, st := n.Netmask(); st.OK() {
		fmt.Fprintf(w, "  Netmask: %s\n", mask)
	}
	if gw, st := n.GatewayIP(); st.OK() {
		fmt.Fprintf(w, "  Gateway: %s\n", gw)
	}
	fmt.Fprintln(w)
}

func (s *Shell) cmdConfig(ctx context.Context, cmd string) {
	var err error
	switch cmd {
	case "load":
		err = s.client.ConfigLoad(ctx)
	case "save":
		err = s.client.ConfigSave(ctx)
	case "reset":
		err = s.client.ConfigReset(ctx)
	case "qx":
		err = s.client.ConfigQuery(ctx)
	}
	s.report(err, "%s completed", strings.ToUpper(cmd))
}

// cmdStatus summarises every mirror zone heard about so far.
func (s *Shell) cmdStatus() {
	w := s.rl.Stdout()
	fmt.Fprintln(w, "\nMirror State")
	fmt.Fprintln(w, "-------------------------------------------")

	shown := 0
	for id := 1; id <= model.MaxZones; id++ {
		zone, st := s.client.Repository().Zone(id)
		if !st.OK() {
			continue
		}
		name, nameSt := zone.Name()
		volume, volSt := zone.Volume()
		if !nameSt.OK() && !volSt.OK() {
			continue
		}
		shown++
		line := fmt.Sprintf("  Zone %2d", id)
		if nameSt.OK() {
			line += fmt.Sprintf("  %-16s", name)
		}
		if volSt.OK() {
			line += fmt.Sprintf("  vol %d", volume)
		}
		if muted, st := zone.Muted(); st.OK() && muted {
			line += "  [muted]"
		}
		fmt.Fprintln(w, line)
	}
	if shown == 0 {
		fmt.Fprintln(w, "  No zone state heard yet (try 'zone <n>')")
	}
	fmt.Fprintln(w)
}

func (s *Shell) report(err error, format string, args ...any) {
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Error: %v\n", err)
		return
	}
	if format != "" {
		fmt.Fprintf(s.rl.Stdout(), format+"\n", args...)
	}
}

func (s *Shell) usage(use string) {
	fmt.Fprintf(s.rl.Stdout(), "Usage: %s\n", use)
}

func (s *Shell) parseInt(arg string) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Not a number: %s\n", arg)
		return 0, false
	}
	return n, true
}

func (s *Shell) oneInt(args []string, use string) (int, bool) {
	if len(args) < 1 {
		s.usage(use)
		return 0, false
	}
	return s.parseInt(args[0])
}

func (s *Shell) twoInts(args []string, use string) (int, int, bool) {
	if len(args) < 2 {
		s.usage(use)
		return 0, 0, false
	}
	a, ok := s.parseInt(args[0])
	if !ok {
		return 0, 0, false
	}
	b, ok := s.parseInt(args[1])
	if !ok {
		return 0, 0, false
	}
	return a, b, true
}

func (s *Shell) onOff(args []string, use string) (bool, bool) {
	if len(args) < 1 {
		s.usage(use)
		return false, false
	}
	switch strings.ToLower(args[0]) {
	case "on", "1", "true":
		return true, true
	case "off", "0", "false":
		return false, true
	default:
		s.usage(use)
		return false, false
	}
}

func parseSoundMode(arg string) (model.SoundMode, bool) {
	switch strings.ToLower(arg) {
	case "disabled", "off":
		return model.SoundModeDisabled, true
	case "zone":
		return model.SoundModeZoneEqualizer, true
	case "preset":
		return model.SoundModePresetEqualizer, true
	case "tone":
		return model.SoundModeTone, true
	case "lowpass":
		return model.SoundModeLowpass, true
	case "highpass":
		return model.SoundModeHighpass, true
	default:
		return 0, false
	}
}
