package bignum

import "fmt"

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText replaces *i with the parsed value. The caller owns the
// resulting reference; any previous value in *i is not released.
func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("bignum: invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
