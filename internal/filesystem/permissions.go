package filesystem

import (
	"golang.org/x/sys/unix"
)

// perms holds the permission-relevant parts of a resolved stat.
type perms struct {
	mode uint32
	uid  uint32
	gid  uint32
}

func permsOf(stat *unix.Stat_t) perms {
	return perms{
		mode: stat.Mode,
		uid:  stat.Uid,
		gid:  stat.Gid,
	}
}

// hasAccess evaluates one bit family (read, write or execute) against the
// identity. There is no superuser override, a matching owner or group only
// counts when the respective bit is set.
func (p perms) hasAccess(id Identity, userBit, groupBit, otherBit uint32) bool {
	return (p.mode&userBit != 0 && p.uid == id.UID) ||
		(p.mode&groupBit != 0 && p.gid == id.GID) ||
		(p.mode&otherBit != 0)
}

func (p perms) canRead(id Identity) bool {
	return p.hasAccess(id, unix.S_IRUSR, unix.S_IRGRP, unix.S_IROTH)
}

func (p perms) canWrite(id Identity) bool {
	return p.hasAccess(id, unix.S_IWUSR, unix.S_IWGRP, unix.S_IWOTH)
}

func (p perms) canExec(id Identity) bool {
	return p.hasAccess(id, unix.S_IXUSR, unix.S_IXGRP, unix.S_IXOTH)
}
